package config

import "runtime"

const (
	defaultLogDir       = "~/.local/share/tubetag/logs"
	defaultHistoryDB    = "~/.local/share/tubetag/history.db"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultOutputFormat = OutputAuto
	maxBatchWorkers     = 64
)

// Output formats accepted in [output] format.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputAuto  = "auto"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:    defaultLogDir,
			HistoryDB: defaultHistoryDB,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Batch: Batch{
			Workers: defaultWorkers(),
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
	}
}

func defaultWorkers() int {
	return min(max(runtime.NumCPU(), 1), maxBatchWorkers)
}
