// Command dialectctl inspects a live database through a dialect
// provider and prints its schema as canonical DDL.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/syssam/dialect"
	"github.com/syssam/dialect/sql"
)

var (
	driverName  string
	source      string
	schemaName  string
	optionsPath string
	workers     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dialectctl",
	Short: "Database schema inspection through dialect providers",
	Long:  `Connects to a database, introspects its catalog, and prints tables, columns, or portable DDL.`,
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List tables visible in the target schema",
	RunE:  runTables,
}

var columnsCmd = &cobra.Command{
	Use:   "columns <table>",
	Short: "List the columns of a table",
	Args:  cobra.ExactArgs(1),
	RunE:  runColumns,
}

var ddlCmd = &cobra.Command{
	Use:   "ddl",
	Short: "Print CREATE TABLE statements for the whole schema",
	RunE:  runDDL,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&driverName, "driver", dialect.Postgres, "Database dialect: postgres, mysql or sqlite")
	rootCmd.PersistentFlags().StringVar(&source, "dsn", "", "Data source name / connection string")
	rootCmd.PersistentFlags().StringVar(&schemaName, "schema", "", "Schema to introspect (default: dialect default)")
	rootCmd.PersistentFlags().StringVar(&optionsPath, "options", "", "Path to a YAML provider options file")
	ddlCmd.Flags().IntVar(&workers, "workers", 4, "Concurrent introspection connections")

	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(columnsCmd)
	rootCmd.AddCommand(ddlCmd)
}

// provider builds the provider selected by --driver, applying any
// options file.
func provider() (sql.Provider, error) {
	var opts []sql.Option
	if optionsPath != "" {
		o, err := sql.LoadOptions(optionsPath)
		if err != nil {
			return nil, err
		}
		if opts, err = o.Apply(); err != nil {
			return nil, err
		}
	}
	switch driverName {
	case dialect.Postgres:
		return sql.NewPostgres(opts...), nil
	case dialect.MySQL:
		return sql.NewMySQL(opts...), nil
	case dialect.SQLite:
		return sql.NewSQLite(opts...), nil
	default:
		return nil, fmt.Errorf("unsupported dialect %q", driverName)
	}
}

func runTables(cmd *cobra.Command, args []string) error {
	p, err := provider()
	if err != nil {
		return err
	}
	drv, err := p.CreateConnection(source)
	if err != nil {
		return fmt.Errorf("connecting: %w", err)
	}
	defer drv.Close()
	it, err := p.Tables(cmd.Context(), drv, schemaName)
	if err != nil {
		return err
	}
	defer it.Close()
	for it.Next() {
		fmt.Println(it.Table().Name)
	}
	return it.Err()
}

func runColumns(cmd *cobra.Command, args []string) error {
	p, err := provider()
	if err != nil {
		return err
	}
	drv, err := p.CreateConnection(source)
	if err != nil {
		return fmt.Errorf("connecting: %w", err)
	}
	defer drv.Close()
	it, err := p.Columns(cmd.Context(), drv, args[0], schemaName)
	if err != nil {
		return err
	}
	defer it.Close()
	for it.Next() {
		c := it.Column()
		nullable := "NOT NULL"
		if c.Nullable {
			nullable = "NULL"
		}
		fmt.Printf("%s\t%s\t%s\n", c.Name, c.Type, nullable)
	}
	return it.Err()
}

func runDDL(cmd *cobra.Command, args []string) error {
	p, err := provider()
	if err != nil {
		return err
	}
	tables, err := sql.SnapshotN(cmd.Context(), p, source, schemaName, workers)
	if err != nil {
		return err
	}
	for _, t := range tables {
		stmt, err := p.CreateTable(&t)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", t.Name, err)
		}
		fmt.Println(stmt + ";")
	}
	return nil
}
