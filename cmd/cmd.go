package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/akamensky/argparse"
	"github.com/spf13/viper"

	"github.com/qfactor/QFactor-core/config"
	"github.com/qfactor/QFactor-core/printer"
	"github.com/qfactor/QFactor-core/reporter"
	"github.com/qfactor/QFactor-core/shor"
	"github.com/qfactor/QFactor-core/util"
)

func Execute() {
	parser := argparse.NewParser("qfactor", "A classical simulation of the arithmetic core of Shor's integer-factorization algorithm")
	budget := parser.Int("b", "budget", &argparse.Options{Help: "Maximum number of candidate bases to try before giving up"})
	ceiling := parser.String("c", "ceiling", &argparse.Options{Help: "Upper bound for the classical period scan (defaults to N itself)"})
	tablePrint := parser.Flag("t", "table", &argparse.Options{Help: "Output the attempt log as a table"})
	jsonPrint := parser.Flag("j", "json", &argparse.Options{Help: "Output results as JSON"})
	report := parser.Flag("r", "report", &argparse.Options{Help: "Print a summary report (discard tallies) after the run"})
	progress := parser.Flag("P", "progress", &argparse.Options{Help: "Show a progress bar while scanning for a period"})
	parallel := parser.Int("", "parallel", &argparse.Options{Help: "How many moduli to factor concurrently when several are given"})
	ver := parser.Flag("v", "version", &argparse.Options{Help: "Print version info and exit"})
	str := parser.StringPositional(&argparse.Options{Help: "The composite number N to factor; comma-separate to factor several"})

	err := parser.Parse(os.Args)
	if err != nil {
		// In case of error print error and print usage
		// This can also be done by passing -h or --help flags
		fmt.Print(parser.Usage(err))
		return
	}

	if !*jsonPrint {
		printer.Version()
	}
	if *ver {
		os.Exit(0)
	}

	config.InitConfig()

	moduli, err := readModuli(*str)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	cfg := shor.Config{}

	cfg.MaxAttempts = *budget
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = util.EnvMaxAttempts
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = viper.GetInt(config.KeyMaxAttempts)
	}

	ceilStr := *ceiling
	if ceilStr == "" {
		ceilStr = util.EnvCeiling
	}
	if ceilStr == "" {
		ceilStr = viper.GetString(config.KeyPeriodCeiling)
	}
	cfg.PeriodCeiling, err = util.ParseCeiling(ceilStr)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if len(moduli) > 1 {
		workers := *parallel
		if workers == 0 {
			workers = util.EnvParallel
		}
		if workers == 0 {
			workers = viper.GetInt(config.KeyParallel)
		}
		if batchRun(moduli, cfg, workers, *jsonPrint) {
			os.Exit(1)
		}
		return
	}

	n := moduli[0]
	if !*jsonPrint {
		cfg.RealtimePrinter = printer.RealtimePrinter
		if (*progress || viper.GetBool(config.KeyProgress)) && !util.EnvNoProgress {
			cfg.OnPeriodTick = printer.PeriodProgress()
		}
		fmt.Printf("Attempting to factor N = %s\n", n)
	}

	start := time.Now()
	res, ferr := shor.Factor(n, cfg)
	elapsed := time.Since(start)

	if *jsonPrint {
		out, _ := json.MarshalIndent(res, "", "  ")
		fmt.Println(string(out))
		if ferr != nil {
			os.Exit(1)
		}
		return
	}

	if ferr != nil {
		attempts := 0
		if res != nil {
			attempts = len(res.Attempts)
		}
		printer.FailurePrinter(n, ferr, attempts)
		os.Exit(1)
	}

	printer.ResultPrinter(res, elapsed)
	if *tablePrint || viper.GetBool(config.KeyTablePrint) {
		printer.AttemptTablePrinter(res)
	}
	if *report {
		reporter.New(res, elapsed).Print()
	}
}
