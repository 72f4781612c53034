package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vertex-lab/corpusrank/pkg/pagerank"
	"github.com/vertex-lab/corpusrank/pkg/utils/logger"
)

type SystemConfig struct {
	Log         *logger.Aggregate
	LogWriter   io.Writer
	LogLevel    string
	PrintConfig bool
}

// The configuration parameters for the system and the estimators.
type Config struct {
	SystemConfig
	Pagerank pagerank.Config
}

func NewSystemConfig(stderr io.Writer) SystemConfig {
	return SystemConfig{
		LogWriter: stderr,
		LogLevel:  "info",
	}
}

// NewConfig() returns a config with default parameters.
func NewConfig(stderr io.Writer) *Config {
	return &Config{
		SystemConfig: NewSystemConfig(stderr),
		Pagerank:     pagerank.NewConfig(),
	}
}

func (c SystemConfig) Print(w io.Writer) {
	fmt.Fprintln(w, "System:")
	fmt.Fprintf(w, "  LogWriter: %T\n", c.LogWriter)
	fmt.Fprintf(w, "  LogLevel: %s\n", c.LogLevel)
	fmt.Fprintf(w, "  PrintConfig: %t\n", c.PrintConfig)
}

func (c *Config) Print(w io.Writer) {
	c.SystemConfig.Print(w)
	c.Pagerank.Print(w)
}

// LoadConfig() reads the variables from the environment and parses them into a config struct.
// Logs go to stderr unless LOGS specifies a .log file.
func LoadConfig(environ []string, stderr io.Writer) (*Config, error) {
	var config = NewConfig(stderr)
	var err error

	for _, item := range environ {
		keyVal := strings.SplitN(item, "=", 2)
		if len(keyVal) != 2 {
			continue
		}
		key, val := keyVal[0], keyVal[1]

		switch key {
		case "LOGS":
			// LogWriter gets updated if a .log file is specified; otherwise it remains stderr
			if strings.HasSuffix(val, ".log") {
				config.LogWriter, err = os.OpenFile(val, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
				if err != nil {
					return nil, fmt.Errorf("error opening file \"%v\": %v", val, err)
				}
			}

		case "LOG_LEVEL":
			config.LogLevel = val

		case "PRINT_CONFIG":
			config.PrintConfig, err = strconv.ParseBool(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "DAMPING":
			config.Pagerank.Damping, err = strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "SAMPLES":
			config.Pagerank.Samples, err = strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "TOLERANCE":
			config.Pagerank.Tolerance, err = strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "MAX_ITERATIONS":
			config.Pagerank.MaxIterations, err = strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "SEED":
			config.Pagerank.Seed, err = strconv.ParseInt(val, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}
		}
	}

	config.Log = logger.New(config.LogWriter)
	if err := config.Log.SetLevel(config.LogLevel); err != nil {
		config.CloseLogs()
		return nil, err
	}

	if err := config.Pagerank.Validate(); err != nil {
		config.CloseLogs()
		return nil, err
	}

	return config, nil
}

// CloseLogs() closes the config.LogWriter if that is a file.
func (c *Config) CloseLogs() {
	if file, ok := c.LogWriter.(*os.File); ok && file != os.Stdout && file != os.Stderr {
		file.Close()
	}
}
