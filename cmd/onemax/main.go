// Command onemax evolves bit strings toward all ones with a generational genetic algorithm.
// A single run is configured with flags; -plan runs every experiment of a YAML plan file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"go.uber.org/zap"

	"github.com/lixenwraith/onemax/genetic"
	"github.com/lixenwraith/onemax/genetic/registry"
	"github.com/lixenwraith/onemax/genetic/tracking"
	"github.com/lixenwraith/onemax/parameter"
)

var (
	lengthFlag    = flag.Int("length", parameter.GAGenomeLength, "Genome length in bits")
	popFlag       = flag.Int("pop", parameter.GAPopulationSize, "Population size")
	cxFlag        = flag.Float64("cx", parameter.GACrossoverProbability, "Crossover probability per pair")
	mutFlag       = flag.Float64("mut", parameter.GAMutationProbability, "Mutation probability per individual")
	tournFlag     = flag.Int("tourn", parameter.GATournamentSize, "Tournament size")
	gensFlag      = flag.Int("gens", parameter.GAMaxGenerations, "Maximum generations")
	hofFlag       = flag.Int("hof", parameter.GAHallOfFameSize, "Hall of Fame size")
	seedFlag      = flag.Uint64("seed", parameter.GASeed, "RNG seed")
	randomFlag    = flag.Bool("random-seed", false, "Draw a random seed instead of -seed (the drawn seed is saved in the report)")
	problemFlag   = flag.String("problem", registry.ProblemOneMax, "Problem: onemax, trap")
	trapFlag      = flag.Int("trap", parameter.GATrapSize, "Deceptive trap block size")
	selectionFlag = flag.String("selection", registry.SelectionTournament, "Selection: tournament, roulette")
	crossoverFlag = flag.String("crossover", registry.CrossoverOnePoint, "Crossover: one_point, uniform")
	planFlag      = flag.String("plan", "", "YAML plan file with experiments to run")
	outFlag       = flag.String("out", "", "Directory for YAML run reports (empty disables saving)")
	verboseFlag   = flag.Bool("verbose", false, "Log run progress to stderr")
	debugFlag     = flag.Bool("debug", false, "Write per-generation debug logs to "+logDir+"/"+logFileName)

	indpbFlag       optionalFloat
	indpbScaledFlag optionalFloat
)

func init() {
	flag.Var(&indpbFlag, "indpb", "Absolute per-bit flip probability (default 1/length)")
	flag.Var(&indpbScaledFlag, "indpb-scaled", "Per-bit flip probability as a multiple of 1/length; excludes -indpb")
}

// optionalFloat is a float flag that stays nil until set
type optionalFloat struct {
	value *float64
}

func (o *optionalFloat) String() string {
	if o == nil || o.value == nil {
		return ""
	}
	return strconv.FormatFloat(*o.value, 'g', -1, 64)
}

func (o *optionalFloat) Set(s string) error {
	if s == "" {
		o.value = nil
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	o.value = &v
	return nil
}

func main() {
	os.Exit(realMain())
}

// realMain returns the exit code so deferred cleanup runs before os.Exit
func realMain() int {
	flag.Parse()

	logger, logFile, err := setupLogging(*debugFlag, *verboseFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logger, os.Stdout); err != nil {
		logger.Error("run failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "onemax: %v\n", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, logger *zap.Logger, out io.Writer) error {
	plan, err := buildPlan()
	if err != nil {
		return err
	}

	reg := registry.NewRegistry(plan.ReportPath, logger)
	for _, exp := range plan.Experiments {
		if err := reg.Register(exp); err != nil {
			return err
		}
	}

	runErr := reg.RunAll(ctx)

	for _, name := range reg.Names() {
		res, _ := reg.GetTracker(name).Result()
		printResult(out, name, res)
	}

	if plan.ReportPath != "" {
		if err := reg.SaveAll(); err != nil {
			return err
		}
	}
	return runErr
}

// buildPlan reads -plan when given, otherwise describes a single experiment from flags
func buildPlan() (registry.Plan, error) {
	if *planFlag != "" {
		plan, err := registry.LoadPlan(*planFlag)
		if err != nil {
			return plan, err
		}
		if *outFlag != "" {
			plan.ReportPath = *outFlag
		}
		return plan, nil
	}

	exp := registry.DefaultExperiment(*problemFlag)
	exp.Problem = *problemFlag
	exp.TrapSize = *trapFlag
	exp.Selection = *selectionFlag
	exp.Crossover = *crossoverFlag
	exp.PerBitScale = indpbScaledFlag.value
	exp.Engine = genetic.EngineConfig{
		PopulationSize:            *popFlag,
		GenomeLength:              *lengthFlag,
		CrossoverProbability:      *cxFlag,
		MutationProbability:       *mutFlag,
		PerBitMutationProbability: indpbFlag.value,
		TournamentSize:            *tournFlag,
		MaxGenerations:            *gensFlag,
		HallOfFameSize:            *hofFlag,
		Seed:                      genetic.FixedSeed(*seedFlag),
	}
	if *randomFlag {
		exp.Engine.Seed = nil
	}

	return registry.Plan{
		ReportPath:  *outFlag,
		Experiments: []registry.ExperimentConfig{exp},
	}, nil
}

func printResult(w io.Writer, name string, res *genetic.Result) {
	if res == nil {
		return
	}

	fmt.Fprintf(w, "== %s (%s after %d generations, %d evaluations)\n", name, res.State, res.Generations, res.Evaluations)
	fmt.Fprint(w, tracking.FromRecords(res.Records).String())

	fmt.Fprintln(w, "Hall of Fame:")
	for i, ind := range res.HallOfFame {
		fmt.Fprintf(w, "%3d  %s\n", i+1, ind)
	}

	if best, ok := res.Best(); ok {
		fmt.Fprintf(w, "Best: %s\n\n", best)
	}
}
