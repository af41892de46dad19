package autorule

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/openlaw-hk/counsel/pkg/counsel/rules"
)

// ruleDoc is the YAML rulebase document layout, matching what the config
// loader reads so generated rules can be reviewed and promoted.
type ruleDoc struct {
	GeneratedAt string     `yaml:"generated_at"`
	Rules       []ruleYAML `yaml:"rules"`
}

type ruleYAML struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Kind        string   `yaml:"kind"`
	Conditions  []string `yaml:"conditions"`
	Conclusion  string   `yaml:"conclusion"`
	Citation    string   `yaml:"citation,omitempty"`
	Penalty     string   `yaml:"penalty,omitempty"`
	Confidence  float64  `yaml:"confidence,omitempty"`
	Explanation string   `yaml:"explanation,omitempty"`
}

// Export writes generated rules as a YAML rulebase document.
func Export(w io.Writer, rs []rules.Rule) error {
	doc := ruleDoc{GeneratedAt: time.Now().UTC().Format(time.RFC3339)}
	for _, r := range rs {
		doc.Rules = append(doc.Rules, ruleYAML{
			ID:          r.ID,
			Name:        r.Name,
			Kind:        r.Kind.String(),
			Conditions:  r.Conditions,
			Conclusion:  r.Conclusion,
			Citation:    r.Citation,
			Penalty:     r.Penalty,
			Confidence:  r.Confidence,
			Explanation: r.Explanation,
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode generated rules: %w", err)
	}
	return enc.Close()
}

// ExportFile writes generated rules to a YAML file.
func ExportFile(path string, rs []rules.Rule) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create rulebase file: %w", err)
	}
	if err := Export(f, rs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
