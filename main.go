package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/awpalmer/irextract/binarize"
	"github.com/awpalmer/irextract/capture"
	"github.com/awpalmer/irextract/config"
	"github.com/awpalmer/irextract/extract"
	"github.com/awpalmer/irextract/output"

	"github.com/knadh/koanf/parsers/hcl"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var cli struct {
	Verbose bool `help:"Prints debug output by default"`
	Profile bool `help:"Output a pprof profile"`
	Probe   struct {
		File string `arg:"" type:"existingfile" help:"Capture CSV to inspect"`
	} `cmd:"" help:"Print capture voltage statistics and a suggested trigger"`
	Extract struct {
		SampleRate float64 `arg:"" help:"Capture sample rate in samples per second"`
		File       string  `arg:"" type:"existingfile" help:"Capture CSV to process"`
	} `cmd:"" help:"Compile the capture into a duration table and code sequence"`
}

var configFile = koanf.New(".")

func getConfigPath() string {
	paths := []string{"/etc/irextract/config.hcl", "~/.config/irextract/config.hcl", "./config.hcl"}
	for _, path := range paths {
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			log.Infof("Found config file: %s", path)
			return path
		}
	}
	log.Info("Config file not found, using defaults")
	return ""
}

func loadConf() config.Extract {
	if err := configFile.Load(file.Provider(getConfigPath()), hcl.Parser(true)); err != nil {
		log.Debugf("Could not read config file: %v", err)
		log.Debug("Attempting to use environment variables")
		configFile.Load(env.Provider("", env.Opt{
			Prefix: "IREXTRACT_",
			TransformFunc: func(k, v string) (string, any) {
				key := strings.ToLower(strings.TrimPrefix(k, "IREXTRACT_"))
				k = strings.Replace(key, "_", ".", 1)
				fmt.Printf("Found config env var: %s=%v\n", k, v)
				return k, v
			},
		}), nil)
	}

	conf, err := config.FromKoanf(configFile)
	if err != nil {
		log.Fatalf("Bad configuration: %v", err)
	}

	log.Debugf("Using extraction config: %##v", conf)
	return conf
}

func main() {
	log.Info("Starting irextract")
	flags := kong.Parse(&cli)
	if cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if cli.Profile {
		prof, err := os.Create("./cpu.pprof")
		if err != nil {
			panic(err)
		}
		pprof.StartCPUProfile(prof)
		defer pprof.StopCPUProfile()
	}

	switch flags.Command() {
	case "probe <file>":
		samples, err := capture.ReadFile(cli.Probe.File)
		if err != nil {
			log.Fatalf("Could not read capture: %v", err)
		}
		sum := binarize.Stats(samples)
		log.Infof("Voltage: min=%0.3fV mean=%0.3fV max=%0.3fV", sum.MinV, sum.MeanV, sum.MaxV)
		log.Infof("Suggested capture.trigger_v: %0.3f", sum.SuggestedTriggerV)

	case "extract <sample-rate> <file>":
		conf := loadConf()
		conf.SampleRate = cli.Extract.SampleRate
		if conf.SampleRate <= 0 {
			log.Fatalf("Sample rate must be positive, got %v", conf.SampleRate)
		}

		samples, err := capture.ReadFile(cli.Extract.File)
		if err != nil {
			log.Fatalf("Could not read capture: %v", err)
		}

		res, err := extract.Run(samples, conf)
		if err != nil {
			log.Fatalf("Extraction failed: %v", err)
		}

		if _, err := output.WriteFile(cli.Extract.File, conf.Output.Suffix, res); err != nil {
			log.Fatalf("Could not write output: %v", err)
		}
	default:
		log.Info("Command not recognized")
	}
}
