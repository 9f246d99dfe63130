package context

import (
	"github.com/liuys-dase/deque/config"
	"github.com/liuys-dase/deque/timecounter"
)

type Context struct {
	Config  *config.ServerConfig
	Counter *timecounter.DequeTimeCounter
}

// NewContextWithConfig 使用已加载的配置创建 Context，并附带新的计时器
func NewContextWithConfig(conf *config.ServerConfig) *Context {
	return &Context{
		Config:  conf,
		Counter: timecounter.NewDequeTimeCounter(),
	}
}
