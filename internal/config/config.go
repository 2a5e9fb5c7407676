package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjackforbots/internal/game"
)

// File is the on-disk HCL configuration: an optional rules block for the
// table and an optional simulation block for batch runs.
//
//	rules {
//	  decks              = 6
//	  dealer_hits_soft17 = true
//	  double             = true
//	  surrender          = false
//	  peek               = true
//	  blackjack_pays     = "3:2"
//	}
//
//	simulation {
//	  rounds   = 100000
//	  seed     = 42
//	  bet      = 100
//	  strategy = "basic"
//	}
type File struct {
	Rules      *RulesBlock      `hcl:"rules,block"`
	Simulation *SimulationBlock `hcl:"simulation,block"`
}

// RulesBlock mirrors game.Rules. Booleans that default to true are
// pointers so an absent attribute keeps the default rather than turning
// the rule off.
type RulesBlock struct {
	Decks            int    `hcl:"decks,optional"`
	DealerHitsSoft17 *bool  `hcl:"dealer_hits_soft17,optional"`
	Double           *bool  `hcl:"double,optional"`
	DoubleAfterSplit *bool  `hcl:"double_after_split,optional"`
	Surrender        bool   `hcl:"surrender,optional"`
	Peek             *bool  `hcl:"peek,optional"`
	BlackjackPays    string `hcl:"blackjack_pays,optional"`
}

// SimulationBlock configures a batch run
type SimulationBlock struct {
	Rounds   int    `hcl:"rounds,optional"`
	Seed     uint64 `hcl:"seed,optional"`
	Bet      int64  `hcl:"bet,optional"`
	Strategy string `hcl:"strategy,optional"`
}

// Simulation is the resolved batch-run configuration
type Simulation struct {
	Rounds   int
	Seed     uint64
	Bet      int64
	Strategy string
}

// Config is the fully resolved configuration
type Config struct {
	Rules      game.Rules
	Simulation Simulation
}

// DefaultSimulation returns the batch-run defaults
func DefaultSimulation() Simulation {
	return Simulation{
		Rounds:   100000,
		Seed:     42,
		Bet:      100,
		Strategy: "basic",
	}
}

// Default returns the configuration used when no file is supplied
func Default() *Config {
	return &Config{
		Rules:      game.DefaultRules(),
		Simulation: DefaultSimulation(),
	}
}

// Load reads an HCL configuration file and resolves it over the defaults
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data, filename)
}

// Parse decodes HCL source and resolves it over the defaults. The
// filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %s", filename, diags.Error())
	}

	var file File
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &file); diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %s", filename, diags.Error())
	}

	cfg := Default()
	if err := applyRules(&cfg.Rules, file.Rules); err != nil {
		return nil, err
	}
	applySimulation(&cfg.Simulation, file.Simulation)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyRules(rules *game.Rules, block *RulesBlock) error {
	if block == nil {
		return nil
	}
	if block.Decks != 0 {
		rules.NumDecks = block.Decks
	}
	if block.DealerHitsSoft17 != nil {
		rules.DealerHitsSoft17 = *block.DealerHitsSoft17
	}
	if block.Double != nil {
		rules.DoubleAllowed = *block.Double
	}
	if block.DoubleAfterSplit != nil {
		rules.DoubleAfterSplit = *block.DoubleAfterSplit
	}
	rules.Surrender = block.Surrender
	if block.Peek != nil {
		rules.PeekForBlackjack = *block.Peek
	}
	if block.BlackjackPays != "" {
		num, den, err := ParsePayout(block.BlackjackPays)
		if err != nil {
			return err
		}
		rules.BlackjackPaysNum = num
		rules.BlackjackPaysDen = den
	}
	return nil
}

func applySimulation(sim *Simulation, block *SimulationBlock) {
	if block == nil {
		return
	}
	if block.Rounds != 0 {
		sim.Rounds = block.Rounds
	}
	if block.Seed != 0 {
		sim.Seed = block.Seed
	}
	if block.Bet != 0 {
		sim.Bet = block.Bet
	}
	if block.Strategy != "" {
		sim.Strategy = block.Strategy
	}
}

// ParsePayout parses a blackjack payout ratio like "3:2" or "6:5"
func ParsePayout(s string) (num, den int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid blackjack_pays %q: want num:den like 3:2", s)
	}
	num, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid blackjack_pays %q: %w", s, err)
	}
	den, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid blackjack_pays %q: %w", s, err)
	}
	return num, den, nil
}

// Validate rejects configuration the engine assumes never reaches it:
// the shoe requires at least one deck and the payout ratio a positive
// denominator.
func Validate(cfg *Config) error {
	if cfg.Rules.NumDecks < 1 {
		return fmt.Errorf("decks must be >= 1, got %d", cfg.Rules.NumDecks)
	}
	if cfg.Rules.BlackjackPaysNum < 0 || cfg.Rules.BlackjackPaysDen < 1 {
		return fmt.Errorf("invalid blackjack payout %d:%d",
			cfg.Rules.BlackjackPaysNum, cfg.Rules.BlackjackPaysDen)
	}
	if cfg.Simulation.Rounds < 0 {
		return fmt.Errorf("rounds must be >= 0, got %d", cfg.Simulation.Rounds)
	}
	if cfg.Simulation.Bet < 0 {
		return fmt.Errorf("bet must be >= 0, got %d", cfg.Simulation.Bet)
	}
	return nil
}
