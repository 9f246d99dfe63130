package config

import (
	"fmt"
	"strings"

	"github.com/go-ini/ini"
	"github.com/juju/errors"
)

type ServerConfig struct {
	WorkloadConfig *WorkloadConfig
}

// LoadServerConfig 读取配置文件
func LoadServerConfig(iniPath string) (*ServerConfig, error) {
	ini, err := readConfig(iniPath)
	if err != nil {
		return nil, err
	}
	return &ServerConfig{
		WorkloadConfig: NewWorkloadConfig(ini),
	}, nil
}

type WorkloadConfig struct {
	Script      string // 以 ; 分隔的操作序列
	RandomOps   int    // 大于 0 时忽略 Script，生成随机操作序列
	Seed        int64
	LogSnapshot bool
}

func NewWorkloadConfig(ini *ini.File) *WorkloadConfig {
	return &WorkloadConfig{
		Script:      ini.Section("Workload").Key("Script").String(),
		RandomOps:   ini.Section("Workload").Key("RandomOps").MustInt(),
		Seed:        ini.Section("Workload").Key("Seed").MustInt64(1),
		LogSnapshot: ini.Section("Workload").Key("LogSnapshot").MustBool(),
	}
}

// Validate 检查操作序列来源：RandomOps 不能为负，且 RandomOps 为 0 时必须提供 Script
func (wc *WorkloadConfig) Validate() error {
	if wc.RandomOps < 0 {
		return errors.NotValidf("RandomOps %d", wc.RandomOps)
	}
	if wc.RandomOps == 0 && strings.TrimSpace(wc.Script) == "" {
		return errors.NotValidf("empty Script")
	}
	return nil
}

// 读取配置文件，Script 使用 ; 分隔，因此不解析行内注释
func readConfig(filePath string) (*ini.File, error) {
	ini, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, filePath)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return ini, nil
}
