// Command fleetsim runs the energy-harvesting edge fleet simulator:
// "run" drives a simulation to completion, "serve" additionally exposes
// a live status/telemetry HTTP API while it runs, and "rank" scores
// candidate energy traces by harvesting potential.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"fleetsim/internal/analysis"
	fleetapi "fleetsim/internal/api"
	"fleetsim/internal/config"
	"fleetsim/internal/harvester"
	"fleetsim/internal/sim"
	"fleetsim/internal/strategy"
	"fleetsim/internal/telemetry"
	"fleetsim/internal/topology"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		cmdRun(os.Args[2:], false)
	case "serve":
		cmdRun(os.Args[2:], true)
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  fleetsim run   --config config.yaml --topology topology.json --energy energy.csv --out-dir results/")
	fmt.Println("  fleetsim serve --config config.yaml --topology topology.json --energy energy.csv --addr :8080")
	fmt.Println("  fleetsim rank  --energy energy.csv --devices 4")
}

func cmdRun(args []string, serve bool) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cfgPath := fs.String("config", "", "path to YAML run configuration")
	topoPath := fs.String("topology", "", "path to JSON topology document")
	energyPath := fs.String("energy", "", "path to a precomputed WindPower(W)/SolarPower(W) CSV trace")
	outDir := fs.String("out-dir", "results", "directory to write device.csv/service.csv telemetry")
	addr := fs.String("addr", ":8080", "address to serve the status API on (serve only)")
	_ = fs.Parse(args)

	if *cfgPath == "" || *topoPath == "" || *energyPath == "" {
		fmt.Println("--config, --topology and --energy are all required")
		os.Exit(2)
	}

	cfg, warnings, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("fleetsim: %v", err)
	}
	for _, w := range warnings {
		log.Printf("fleetsim: warning: %s", w)
	}

	doc, err := loadTopologyDocument(*topoPath)
	if err != nil {
		log.Fatalf("fleetsim: %v", err)
	}
	fleet, err := doc.Build()
	if err != nil {
		log.Fatalf("fleetsim: %v", err)
	}

	trace, err := loadTrace(*energyPath)
	if err != nil {
		log.Fatalf("fleetsim: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	h := buildHarvester(cfg, trace, doc.DeviceIDs())
	strat := buildStrategy(cfg, h, rng)

	reg := prometheus.NewRegistry()
	metrics := telemetry.NewMetricsCollector(reg)
	collectors := []telemetry.Collector{metrics}

	state := fleetapi.NewState()
	var server *http.Server
	if serve {
		sink := fleetapi.NewTickSink(state, cfg.Simulation.Steps, string(cfg.Strategy), string(cfg.Offloading), cfg.LoadBalancing)
		collectors = append(collectors, telemetry.NewStateCollector(sink))

		router := fleetapi.NewRouter(state, reg)
		server = &http.Server{Addr: *addr, Handler: fleetapi.WithCORS(router)}
		go func() {
			log.Printf("fleetsim: status API listening on %s", *addr)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("fleetsim: status API stopped: %v", err)
			}
		}()
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("fleetsim: %v", err)
	}
	deviceFile, err := os.Create(filepath.Join(*outDir, "device.csv"))
	if err != nil {
		log.Fatalf("fleetsim: %v", err)
	}
	serviceFile, err := os.Create(filepath.Join(*outDir, "service.csv"))
	if err != nil {
		log.Fatalf("fleetsim: %v", err)
	}
	csvCollector := telemetry.NewCSVCollector(deviceFile, serviceFile)
	collectors = append(collectors, csvCollector)

	logger := telemetry.NewLogger(log.Default()).With(string(cfg.Strategy))
	logger.Infof("starting run: strategy=%s offloading=%s steps=%d", cfg.Strategy, cfg.Offloading, cfg.Simulation.Steps)

	engine := sim.New(fleet, h, strat, collectors, logger, sim.Config{
		Steps:          cfg.Simulation.Steps,
		PMin:           5.0,
		RequiredPowerW: cfg.Battery.PowerRequired,
		Rand:           rng,
	})
	if err := engine.Run(); err != nil {
		log.Fatalf("fleetsim: %v", err)
	}
	if err := csvCollector.Close(); err != nil {
		log.Fatalf("fleetsim: %v", err)
	}
	logger.Infof("run completed after %d ticks", cfg.Simulation.Steps)

	if serve {
		logger.Infof("run finished, status API stays up on %s (ctrl-c to exit)", *addr)
		select {}
	}
}

func loadTopologyDocument(path string) (*topology.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc topology.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("topology: %s is not valid JSON: %w", path, err)
	}
	return &doc, nil
}

func loadTrace(path string) ([]harvester.Sample, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.Contains(string(raw[:min(64, len(raw))]), "WindSpeed") {
		return harvester.LoadWeather(raw)
	}
	return harvester.LoadPrecomputed(raw)
}

func buildHarvester(cfg *config.Config, trace []harvester.Sample, deviceIDs []string) harvester.Harvester {
	if !cfg.Battery.Enabled {
		return harvester.NewEnergyHarvester(trace, deviceIDs)
	}
	return harvester.NewHarvesterBattery(trace, deviceIDs, harvester.BatteryParams{
		AmpereHours:           cfg.Battery.AmpereHours,
		Volts:                 cfg.Battery.Volts,
		DepthOfDischarge:      cfg.Battery.DepthOfDischarge,
		Efficiency:            cfg.Battery.Efficiency,
		InitialChargeFraction: cfg.Battery.InitialChargeFraction,
	})
}

func buildStrategy(cfg *config.Config, h harvester.Harvester, rng *rand.Rand) strategy.Strategy {
	offloading := strategy.OffloadModel
	if cfg.Offloading == config.OffloadData {
		offloading = strategy.OffloadData
	}

	switch cfg.Strategy {
	case config.StrategyReactive:
		return &strategy.Reactive{
			MaxServicesPerDevice: cfg.Reactive.MaxServicesPerDevice,
			Offloading:           offloading,
			Rand:                 rng,
		}
	case config.StrategyProactive:
		return &strategy.Proactive{
			MinPowerThreshold: cfg.Proactive.MinPowerThreshold,
			Offloading:        offloading,
			LoadBalancing:     cfg.LoadBalancing,
			Harvester:         h,
		}
	case config.StrategyOracle:
		return strategy.NewOracle(cfg.Oracle.MaxServicesPerDevice, offloading, cfg.LoadBalancing, rng)
	default:
		log.Fatalf("fleetsim: unsupported strategy %q", cfg.Strategy)
		return nil
	}
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	energyPath := fs.String("energy", "", "path to a precomputed WindPower(W)/SolarPower(W) CSV trace")
	devices := fs.Int("devices", 1, "number of devices to split the trace across before ranking")
	_ = fs.Parse(args)

	if *energyPath == "" {
		fmt.Println("--energy is required")
		os.Exit(2)
	}

	trace, err := loadTrace(*energyPath)
	if err != nil {
		log.Fatalf("fleetsim: %v", err)
	}

	ids := make([]string, *devices)
	for i := range ids {
		ids[i] = fmt.Sprintf("device-%d", i+1)
	}
	byDevice := harvester.SplitByDevice(trace, ids)

	ranked := analysis.RankByOracleUptime(byDevice)
	fmt.Printf("%-4s %-12s %-8s %-10s %-10s %-10s %-10s\n", "rank", "device", "count", "mean_w", "p95-p05", "min/max", "uptime")
	for i, r := range ranked {
		fmt.Printf(
			"%-4d %-12s %-8d %-10.2f %-10.2f %-5.1f/%-5.1f %-10d\n",
			i+1, r.DeviceID, r.Count, r.MeanPowerW, r.SpreadP95P05, r.MinPowerW, r.MaxPowerW, r.OracleUptimeTicks,
		)
	}
}

