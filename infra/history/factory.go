// Package history provides the JSONL, rotating JSONL and SQLite run history backends.
package history

import (
	"github.com/kilianp07/taskalloc/core/factory"
	corehistory "github.com/kilianp07/taskalloc/core/history"
)

type storeConf struct {
	Path string `json:"path"`
}

type rotatingConf struct {
	Path       string `json:"path"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

// init registers the builtin history backends.
func init() {
	_ = corehistory.RegisterStore("jsonl", func(conf map[string]any) (corehistory.Store, error) {
		var c storeConf
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewJSONLStore(c.Path)
	})
	_ = corehistory.RegisterStore("jsonl-rotating", func(conf map[string]any) (corehistory.Store, error) {
		c := rotatingConf{MaxSizeMB: 10, MaxBackups: 5}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewRotatingJSONLStore(c.Path, c.MaxSizeMB, c.MaxBackups, c.MaxAgeDays)
	})
	_ = corehistory.RegisterStore("sqlite", func(conf map[string]any) (corehistory.Store, error) {
		c := storeConf{Path: "taskalloc.db"}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewSQLiteStore(c.Path)
	})
}
