package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/idrispack/cli/internal/config"
	"github.com/idrispack/cli/internal/core"
	"github.com/idrispack/cli/internal/database"
	"github.com/idrispack/cli/internal/errors"
	"github.com/idrispack/cli/internal/output"
)

// NewDBCmd creates the db command group.
func NewDBCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "db",
		Short: "Inspect and edit the package database",
		Long: `Inspect and edit the package database of the active collection.

The database pins the compiler distribution and maps package names to
their sources: a remote repository, a local directory, or a library
bundled with the compiler.`,
	}

	c.AddCommand(newDBInitCmd())
	c.AddCommand(newDBShowCmd())
	c.AddCommand(newDBLookupCmd())
	c.AddCommand(newDBAddGitHubCmd())
	c.AddCommand(newDBAddLocalCmd())
	c.AddCommand(newDBRemoveCmd())

	return c
}

// loadDB reads and decodes the active collection's database.
func loadDB() (database.DB, string, error) {
	path, err := config.DBFile(Config().Collection)
	if err != nil {
		return database.DB{}, "", fmt.Errorf("locating database: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return database.DB{}, "", errors.NewExitError(
				errors.NewNotFoundError(
					fmt.Sprintf("no database for collection %q", Config().Collection),
					path,
					"run `pack db init` to create it",
				),
				ExitNotFound,
			)
		}
		return database.DB{}, "", fmt.Errorf("reading database: %w", err)
	}

	db, err := database.Decode(string(data))
	if err != nil {
		return database.DB{}, "", errors.NewExitError(
			errors.NewValidationError(
				err.Error(),
				path,
				"fix the file by hand or recreate it with `pack db init --force`",
			),
			ExitValidationError,
		)
	}
	return db, path, nil
}

// saveDB serializes the database to the active collection's file.
func saveDB(db database.DB) (string, error) {
	if err := config.EnsureDBDir(); err != nil {
		return "", fmt.Errorf("creating database directory: %w", err)
	}

	path, err := config.DBFile(Config().Collection)
	if err != nil {
		return "", fmt.Errorf("locating database: %w", err)
	}

	if err := os.WriteFile(path, []byte(database.Encode(db)), 0o644); err != nil {
		return "", fmt.Errorf("writing database: %w", err)
	}
	return path, nil
}

func newDBInitCmd() *cobra.Command {
	var (
		commit  string
		version string
		force   bool
	)

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a fresh package database for the active collection",
		Long: `Create a fresh package database pinning the configured compiler
distribution and registering every core package.`,
		RunE: func(command *cobra.Command, _ []string) error {
			path, err := config.DBFile(Config().Collection)
			if err != nil {
				return fmt.Errorf("locating database: %w", err)
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.NewExitError(
					fmt.Errorf("database already exists at %s (use --force to overwrite)", path),
					ExitGeneralError,
				)
			}

			db := database.New(Config().CompilerURL, core.Commit(commit), version)
			for _, c := range core.CorePkgs() {
				db = db.Insert(c.Name(), core.CorePackage(c))
			}

			path, err = saveDB(db)
			if err != nil {
				return err
			}

			output.Info("database created", "collection", Config().Collection, "path", path, "packages", db.Len())
			return nil
		},
	}

	c.Flags().StringVar(&commit, "commit", "", "Resolved commit of the compiler distribution")
	c.Flags().StringVar(&version, "compiler-version", "", "Semantic version of the compiler")
	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing database")
	_ = c.MarkFlagRequired("commit")
	_ = c.MarkFlagRequired("compiler-version")

	return c
}

func newDBShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List every package in the database",
		RunE: func(command *cobra.Command, _ []string) error {
			var db database.DB
			err := output.RunWithSpinner(command.Context(), func() error {
				var err error
				db, _, err = loadDB()
				return err
			}, output.WithTitle("Loading database..."))
			if err != nil {
				return err
			}

			summary := fmt.Sprintf("collection %s: compiler %s (%s) at %s",
				Config().Collection, db.Version, output.FormatCommit(db.Commit), db.URL)
			fmt.Fprintln(command.OutOrStdout(), output.StyleSummary.Render(summary))

			tbl := output.NewTable("NAME", "TYPE", "SOURCE", "COMMIT")
			for _, name := range db.Names() {
				pkg, _ := db.Lookup(name)
				tbl.Row(name, pkg.Kind().String(), pkgSource(pkg), pkgCommit(pkg))
			}
			fmt.Fprintln(command.OutOrStdout(), tbl.String())
			return nil
		},
	}
}

func pkgSource(pkg core.Package) string {
	switch pkg.Kind() {
	case core.KindGitHub:
		g, _ := pkg.AsGitHub()
		return g.URL
	case core.KindLocal:
		l, _ := pkg.AsLocal()
		return l.Dir
	default:
		c, _ := pkg.AsCore()
		return c.ManifestPath()
	}
}

func pkgCommit(pkg core.Package) string {
	if g, ok := pkg.AsGitHub(); ok {
		return g.Commit.String()
	}
	return "-"
}

func newDBLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <package>",
		Short: "Show one package's database entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			db, path, err := loadDB()
			if err != nil {
				return err
			}

			name := args[0]
			pkg, ok := db.Lookup(name)
			if !ok {
				return errors.NewExitError(
					fmt.Errorf("%w: package %q not in collection %q", errors.ErrNotFound, name, Config().Collection),
					ExitNotFound,
				)
			}

			output.Debug("entry found", "db", path)
			fmt.Fprintln(command.OutOrStdout(), output.FormatPackageLine(name, pkg))
			if pkg.NeedsPackagePath() {
				fmt.Fprintln(command.OutOrStdout(), output.StyleWarn.Render("needs package search path at runtime"))
			}
			return nil
		},
	}
}

func newDBAddGitHubCmd() *cobra.Command {
	var (
		ipkg        string
		commit      string
		packagePath bool
	)

	c := &cobra.Command{
		Use:   "add-github <name> <url>",
		Short: "Register a remote package",
		Long: `Register a remote package in the database.

The commit reference may be an exact hash or tag, "latest:<branch>" to
resolve the branch tip once, or "fetch-latest:<branch>" to re-resolve
the branch tip on every run.`,
		Args: cobra.ExactArgs(2),
		RunE: func(command *cobra.Command, args []string) error {
			db, _, err := loadDB()
			if err != nil {
				return err
			}

			name, url := args[0], args[1]
			db = db.Insert(name, core.GitHubPackage(core.GitHubPkg{
				URL:          url,
				Commit:       core.ParseCommitRef(commit),
				ManifestPath: ipkg,
				PackagePath:  packagePath,
			}))

			path, err := saveDB(db)
			if err != nil {
				return err
			}

			output.Info("package registered", "name", name, "type", "github", "db", path)
			return nil
		},
	}

	c.Flags().StringVar(&ipkg, "ipkg", "", "Manifest path relative to the checkout root")
	c.Flags().StringVar(&commit, "commit", "latest:main", "Commit reference to pin")
	c.Flags().BoolVar(&packagePath, "package-path", false, "Executable needs the package search path at runtime")
	_ = c.MarkFlagRequired("ipkg")

	return c
}

func newDBAddLocalCmd() *cobra.Command {
	var (
		ipkg        string
		packagePath bool
	)

	c := &cobra.Command{
		Use:   "add-local <name> <dir>",
		Short: "Register a local-directory package",
		Args:  cobra.ExactArgs(2),
		RunE: func(command *cobra.Command, args []string) error {
			db, _, err := loadDB()
			if err != nil {
				return err
			}

			name := args[0]
			dir, err := filepath.Abs(args[1])
			if err != nil {
				return fmt.Errorf("resolving package directory: %w", err)
			}

			db = db.Insert(name, core.LocalPackage(core.LocalPkg{
				Dir:          dir,
				ManifestPath: ipkg,
				PackagePath:  packagePath,
			}))

			path, err := saveDB(db)
			if err != nil {
				return err
			}

			output.Info("package registered", "name", name, "type", "local", "db", path)
			return nil
		},
	}

	c.Flags().StringVar(&ipkg, "ipkg", "", "Manifest path relative to the package directory")
	c.Flags().BoolVar(&packagePath, "package-path", false, "Executable needs the package search path at runtime")
	_ = c.MarkFlagRequired("ipkg")

	return c
}

func newDBRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <package>",
		Short: "Remove a package from the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			db, _, err := loadDB()
			if err != nil {
				return err
			}

			name := args[0]
			if _, ok := db.Lookup(name); !ok {
				return errors.NewExitError(
					fmt.Errorf("%w: package %q not in collection %q", errors.ErrNotFound, name, Config().Collection),
					ExitNotFound,
				)
			}

			path, err := saveDB(db.Remove(name))
			if err != nil {
				return err
			}

			output.Info("package removed", "name", name, "db", path)
			return nil
		},
	}
}
