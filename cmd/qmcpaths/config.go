// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/btcsuite/btcutil"
	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/katalvlaran/qmcpaths/driver"
	"github.com/katalvlaran/qmcpaths/pathgen"
)

const (
	defaultConfigFilename = "qmcpaths.conf"
	defaultEnvFilename    = ".env"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "qmcpaths.log"
)

var (
	defaultAppDataDir = btcutil.AppDataDir("qmcpaths", false)
	defaultConfigFile = filepath.Join(defaultAppDataDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(defaultAppDataDir, defaultLogDirname)
)

// config defines the configuration options for qmcpaths.
//
// Values are resolved in this order, later wins: defaults, environment
// (including the dotenv file), config file, command line.
type config struct {
	ConfigFile  string `short:"C" long:"configfile" env:"QMCPATHS_CONFIGFILE" description:"Path to configuration file"`
	EnvFile     string `long:"envfile" description:"Path to a dotenv file loaded into the environment before parsing"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`

	Grid       string    `long:"grid" env:"QMCPATHS_GRID" choice:"short" choice:"long" description:"Built-in time grid"`
	Times      []float64 `long:"times" env:"QMCPATHS_TIMES" env-delim:"," description:"Explicit time grid (repeat or comma list in env); overrides --grid"`
	Samples    int       `short:"n" long:"samples" env:"QMCPATHS_SAMPLES" description:"Number of paths to generate"`
	Seed       int64     `long:"seed" env:"QMCPATHS_SEED" description:"Sobol scrambling seed"`
	Workers    int       `short:"w" long:"workers" env:"QMCPATHS_WORKERS" description:"Goroutines used by the partitioned strategy"`
	Strategies []string  `short:"s" long:"strategy" env:"QMCPATHS_STRATEGIES" env-delim:"," description:"Strategy to run {sequential, guarded, offloaded, partitioned}; repeatable, default all"`
	Output     string    `long:"output" env:"QMCPATHS_OUTPUT" choice:"path" choice:"increments" choice:"normalized" description:"Values written per step"`
	MaxPoints  uint64    `long:"maxpoints" env:"QMCPATHS_MAXPOINTS" description:"Bound the Sobol sequence length (0 = generator limit)"`
	NoScramble bool      `long:"noscramble" env:"QMCPATHS_NOSCRAMBLE" description:"Disable the seeded digital shift"`

	Dump    bool `long:"dump" description:"Print every generated value as 'path j step i value'"`
	Metrics bool `long:"metrics" description:"Print collected metrics in Prometheus text format on exit"`

	DebugLevel string `short:"d" long:"debuglevel" env:"QMCPATHS_DEBUGLEVEL" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	LogDir     string `long:"logdir" env:"QMCPATHS_LOGDIR" description:"Directory to log output"`
	NoLogFile  bool   `long:"nologfile" description:"Log to standard output only"`
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace", "debug", "info", "warn", "error", "critical":
		return true
	}

	return false
}

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}
	sort.Strings(subsystems)

	return subsystems
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly. An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		if !validLogLevel(debugLevel) {
			return fmt.Errorf("the specified debug level [%v] is invalid", debugLevel)
		}
		setLogLevels(debugLevel)

		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		fields := strings.Split(logLevelPair, "=")
		if len(fields) != 2 {
			return fmt.Errorf("the specified debug level contains an invalid "+
				"subsystem/level pair [%v]", logLevelPair)
		}
		subsysID, logLevel := fields[0], fields[1]

		if _, exists := subsystemLoggers[subsysID]; !exists {
			return fmt.Errorf("the specified subsystem [%v] is invalid -- "+
				"supported subsystems %v", subsysID, supportedSubsystems())
		}
		if !validLogLevel(logLevel) {
			return fmt.Errorf("the specified debug level [%v] is invalid", logLevel)
		}
		setLogLevel(subsysID, logLevel)
	}

	return nil
}

// cleanAndExpandPath expands environment variables and a leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}

	return filepath.Clean(os.ExpandEnv(path))
}

// defaultConfig returns the built-in settings before any source is applied.
func defaultConfig() config {
	return config{
		ConfigFile: defaultConfigFile,
		EnvFile:    defaultEnvFilename,
		Grid:       driver.DefaultGrid,
		Samples:    driver.DefaultSamples,
		Seed:       driver.DefaultSeed,
		Workers:    runtime.NumCPU(),
		Output:     pathgen.DefaultOutput.String(),
		DebugLevel: defaultLogLevel,
		LogDir:     defaultLogDir,
	}
}

// loadConfig initializes and parses the config using a dotenv file, a config
// file and command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to find the dotenv and config files
//  3. Load the dotenv file into the environment
//  4. Load configuration file overwriting defaults with any specified options
//  5. Parse CLI options and overwrite/add any specified options
func loadConfig(args []string) (*config, []string, error) {
	cfg := defaultConfig()

	// Pre-parse the command line options to see if an alternative config
	// file, a dotenv file or the version flag was specified. Any errors
	// aside from the help message error can be ignored here since they will
	// be caught by the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag|flags.PassDoubleDash|flags.IgnoreUnknown)
	if _, err := preParser.ParseArgs(args); err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return nil, nil, err
		}
	}

	if preCfg.ShowVersion {
		fmt.Println("qmcpaths version", version())
		os.Exit(0)
	}

	// A missing default dotenv file is fine; an explicit one must exist.
	envFile := cleanAndExpandPath(preCfg.EnvFile)
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || preCfg.EnvFile != defaultEnvFilename {
			return nil, nil, fmt.Errorf("loadConfig: envfile: %w", err)
		}
	}

	// The env file may have changed the environment; parse it into a
	// fresh default config so env tags are applied.
	cfg = defaultConfig()
	parser := flags.NewParser(&cfg, flags.Default)
	configFile := cleanAndExpandPath(preCfg.ConfigFile)
	if err := flags.NewIniParser(parser).ParseFile(configFile); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			fmt.Fprintln(os.Stderr, err)
			parser.WriteHelp(os.Stderr)
			return nil, nil, err
		}
		if configFile != defaultConfigFile {
			return nil, nil, fmt.Errorf("loadConfig: %w", err)
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if !errors.As(err, &e) || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}

	if !cfg.NoLogFile {
		cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
		if err := initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return nil, nil, err
		}
	}

	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err = fmt.Errorf("loadConfig: %w", err)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}

// driverConfig maps the parsed flags onto a driver.Config.
func (c *config) driverConfig() (driver.Config, error) {
	times := c.Times
	if len(times) == 0 {
		var err error
		if times, err = driver.GridByName(c.Grid); err != nil {
			return driver.Config{}, err
		}
	}
	output, err := pathgen.ParseOutput(c.Output)
	if err != nil {
		return driver.Config{}, err
	}

	return driver.Config{
		Times:      times,
		Samples:    c.Samples,
		Seed:       c.Seed,
		Workers:    c.Workers,
		Strategies: c.Strategies,
		Output:     output,
		MaxPoints:  c.MaxPoints,
		NoScramble: c.NoScramble,
	}, nil
}
