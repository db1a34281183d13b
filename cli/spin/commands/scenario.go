package commands

import (
	"os"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/xerrors"
)

type Scenario struct {
	Name  string `toml:"name"`
	Steps []Step `toml:"steps"`
}

type Step struct {
	Level       string         `toml:"level"`
	Msg         string         `toml:"msg"`
	Fields      map[string]any `toml:"fields"`
	SleepMillis int            `toml:"sleepMillis"`
	Quit        bool           `toml:"quit"`
	ReturnCode  int            `toml:"returnCode"`
}

// LoadScenario reads a scenario file, expanding ${VAR} literals from
// the process environment before decoding.
func LoadScenario(path string) (*Scenario, error) {
	content, err := readFileAndApplyEnvars(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := toml.Unmarshal(content, &sc); err != nil {
		return nil, xerrors.Errorf("failed to decode scenario %s: %w", path, err)
	}
	if len(sc.Steps) == 0 {
		return nil, xerrors.Errorf("scenario %s has no steps", path)
	}
	for i, st := range sc.Steps {
		switch st.Level {
		case "info", "verbose", "debug", "warn", "error":
		default:
			return nil, xerrors.Errorf("step %d has unknown level '%s'", i, st.Level)
		}
	}
	return &sc, nil
}

func readFileAndApplyEnvars(path string) ([]byte, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	str := string(d)
	reg := regexp.MustCompile(`\${(.+?)}`)
	submatches := reg.FindAllStringSubmatch(str, -1)
	for _, m := range submatches {
		if envar, ok := os.LookupEnv(m[1]); ok {
			str = strings.Replace(str, m[0], envar, -1)
		} else {
			return nil, xerrors.Errorf("envar literal '%s' found in %s but was not defined", m[0], path)
		}
	}
	return []byte(str), nil
}
