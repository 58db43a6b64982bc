// Package schema provides the canonical, engine-agnostic description of
// tables and columns consumed by the dialect providers.
//
// The model is deliberately small: a [Column] carries a canonical [Type]
// tag plus the attributes needed to render DDL (nullability, length,
// precision and scale, default expression, primary-key and auto-increment
// flags), a [Table] is an ordered sequence of columns with an optional
// schema qualifier, and a [Model] is the fully-resolved view a provider
// reads at generation time.
//
// Instances are built by the caller and are treated as immutable once
// handed to a provider. A [TypeMap] is owned by each provider, populated
// at construction, and read-only afterwards, which makes providers safe
// for concurrent use.
//
// Naming rules (case folding, pluralization) are pluggable through the
// [NamingStrategy] interface; see [SnakeNaming] and [LowercaseNaming].
package schema
