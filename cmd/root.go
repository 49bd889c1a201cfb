package cmd

import (
	"fmt"
	"os"

	"ec2inv/internal/config"
	"ec2inv/internal/inventory"
	"ec2inv/internal/provider"
	"ec2inv/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution. Per-region failures are
	// reported as warnings and still exit successfully.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a fatal configuration error.
	ExitCodeError = 1
)

var (
	rootRegions    string
	rootTag        string
	rootAttributes string
	rootConfigPath string
	rootDebug      bool
)

// rootCmd represents the base command. ec2inv is a single-purpose tool, so the
// root command runs the inventory itself; subcommands only cover versioning.
var rootCmd = &cobra.Command{
	Use:   "ec2inv",
	Short: "List EC2 instances across regions as a tag-sorted table",
	Long: `ec2inv prints every EC2 instance in one or more AWS regions as a
column-aligned text table. Each table shows a configurable set of instance
attributes plus one tag, and is sorted by that tag's value. Instances without
the tag are reported as "unknown".

If a region cannot be inventoried a warning is printed and processing moves on
to the next region. The tool only describes instances; it never changes
anything.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that
	// are handled by the application.
	SilenceUsage: true,
	// Errors are reported by Execute with the ERROR: prefix instead.
	SilenceErrors: true,
	RunE:          runInventory,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the
// application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application. Fatal configuration
// errors print an ERROR line to stdout and exit non-zero; per-region failures
// never reach this path.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "ec2inv version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(ExitCodeError)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.Flags().StringVar(&rootRegions, "regions", "", "Regions to inventory (comma separated). Defaults to all available regions if not specified.")
	rootCmd.Flags().StringVar(&rootTag, "tag", "", `Tag to display and sort by. Defaults to "Owner" if not specified.`)
	rootCmd.Flags().StringVar(&rootAttributes, "attributes", "", `Attributes to display (comma separated). Defaults to "InstanceId,InstanceType,LaunchTime" if not specified.`)
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config-path", config.GetDefaultConfigPathOrPanic(), "Configuration directory")
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "Enable debug logging")
}

// runInventory resolves the run options, fetches the region catalog, and hands
// off to the inventory driver. Every returned error is a fatal configuration
// error (exit code 1); region-level problems are handled inside the driver.
func runInventory(cmd *cobra.Command, args []string) error {
	level := logging.LevelWarn
	if rootDebug {
		level = logging.LevelDebug
	}
	logging.Init(level, cmd.ErrOrStderr())

	fileCfg, err := config.Load(rootConfigPath)
	if err != nil {
		return err
	}
	cfg := config.Resolve(fileCfg, config.Overrides{
		Regions:    rootRegions,
		Tag:        rootTag,
		Attributes: rootAttributes,
	})

	ctx := cmd.Context()
	available, err := provider.NewCatalog().AvailableRegions(ctx)
	if err != nil {
		return fmt.Errorf("could not list available regions: %w", err)
	}

	// Default to inventorying every available region.
	regions := cfg.Regions
	if len(regions) == 0 {
		regions = available
	}

	driver := inventory.NewDriver(inventory.DriverOptions{
		Factory:    provider.NewFactory(),
		Available:  available,
		Attributes: cfg.Attributes,
		Tag:        cfg.Tag,
		Out:        cmd.OutOrStdout(),
	})
	return driver.Run(ctx, regions)
}
