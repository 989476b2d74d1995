// Command rappor-sim simulates a fleet of RAPPOR clients and writes their
// noisy reports as CSV.
//
// Each simulated client gets its own deterministically derived randomness
// source and its own encoder, so clients encode in parallel without shared
// state and a run is fully reproducible under --seed.
//
// # Usage
//
//	rappor-sim --clients=100 --reports=10 --values=v1,v2,v3 > reports.csv
//	rappor-sim --params=params.csv --seed=42 --one-prr --out=reports.csv
//
// The output has one header row followed by one row per report:
//
//	client,cohort,irr
//	c0000,38,0001000000010000
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/clebeer/rappor"
	"github.com/clebeer/rappor/randsrc"
	"golang.org/x/sync/errgroup"
)

func main() {
	var (
		paramsPath = flag.String("params", "", "Path to a k,h,m,p,q,f CSV parameter file (defaults to the upstream parameters)")
		clients    = flag.Int("clients", 100, "Number of simulated clients")
		reports    = flag.Int("reports", 10, "Reports per client")
		valueList  = flag.String("values", "v1,v2,v3,v4,v5", "Comma-separated values, assigned to clients round-robin")
		seed       = flag.Uint64("seed", 1, "Simulation seed; fixed seeds reproduce the full output")
		onePRR     = flag.Bool("one-prr", false, "Pin one permanent response per (client, value) pair")
		outPath    = flag.String("out", "", "Output file (defaults to stdout)")
		verbose    = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, *paramsPath, *clients, *reports, *valueList, *seed, *onePRR, *outPath); err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, paramsPath string, clients, reports int, valueList string, seed uint64, onePRR bool, outPath string) error {
	params, err := loadParams(paramsPath)
	if err != nil {
		return err
	}
	params.OnePRRPerValue = onePRR

	values := strings.Split(valueList, ",")
	if clients < 1 || reports < 1 || len(values) == 0 {
		return fmt.Errorf("need at least one client, one report, and one value")
	}

	logger.Info("simulating",
		"clients", clients,
		"reports", reports,
		"values", len(values),
		"cohorts", params.NumCohorts,
		"one_prr", onePRR,
	)
	start := time.Now()

	// One source and encoder per client: encoders are not safe for
	// concurrent use, so the fleet shares nothing.
	rows := make([][][]string, clients)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for c := 0; c < clients; c++ {
		g.Go(func() error {
			clientID := fmt.Sprintf("c%04d", c)
			src := randsrc.NewFromKey(fmt.Appendf(nil, "%d/%s", seed, clientID))
			enc, err := rappor.NewEncoder(params, clientID, rappor.WithSource(src))
			if err != nil {
				return fmt.Errorf("client %s: %w", clientID, err)
			}

			value := values[c%len(values)]
			out := make([][]string, 0, reports)
			for r := 0; r < reports; r++ {
				report := enc.Encode(value)
				out = append(out, []string{clientID, strconv.Itoa(report.Cohort), report.Bits.String()})
			}
			rows[c] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := writeReports(outPath, rows); err != nil {
		return err
	}

	logger.Info("done",
		"reports", clients*reports,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return nil
}

func loadParams(path string) (rappor.Params, error) {
	if path == "" {
		return rappor.DefaultParams(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return rappor.Params{}, fmt.Errorf("opening params: %w", err)
	}
	defer f.Close()

	params, err := rappor.ParamsFromCSV(f)
	if err != nil {
		return rappor.Params{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return params, nil
}

func writeReports(path string, rows [][][]string) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write([]string{"client", "cohort", "irr"}); err != nil {
		return err
	}
	for _, clientRows := range rows {
		for _, row := range clientRows {
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}
