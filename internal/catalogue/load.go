package catalogue

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/voxline/delog/internal/config"
)

// rawRule is the on-disk shape of a rule in a catalogue file.
type rawRule struct {
	Category  string `mapstructure:"category"`
	Severity  string `mapstructure:"severity"`
	Expr      string `mapstructure:"expr"`
	Multiline bool   `mapstructure:"multiline"`
}

// Load reads a custom catalogue from a YAML file.
//
// The file holds an ordered `rules` list:
//
//	rules:
//	  - category: Init
//	    severity: info
//	    expr: logger\.info\('✅ AGENT LOADED \(v3\)',.*?\);
//	    multiline: false
//
// Order in the file is application order. Every expression is compiled
// eagerly so a broken rule fails at load time rather than mid-strip.
func Load(path string) ([]Rule, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalogue: %w", err)
	}

	var file struct {
		Rules []rawRule `mapstructure:"rules"`
	}
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("parse catalogue: %w", err)
	}

	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("catalogue %s contains no rules", path)
	}

	rules := make([]Rule, 0, len(file.Rules))
	for i, raw := range file.Rules {
		if raw.Expr == "" {
			return nil, fmt.Errorf("catalogue rule %d: expr is required", i+1)
		}

		severity := config.ParseSeverity(raw.Severity)
		if severity == config.SeverityUnknown {
			return nil, fmt.Errorf("catalogue rule %d: unknown severity %q", i+1, raw.Severity)
		}

		rule := Rule{
			Category:  raw.Category,
			Severity:  severity,
			Expr:      raw.Expr,
			Multiline: raw.Multiline,
		}
		if _, err := rule.Compile(); err != nil {
			return nil, fmt.Errorf("catalogue rule %d: %w", i+1, err)
		}

		rules = append(rules, rule)
	}

	return rules, nil
}
