package app

import (
	"errors"
	"fmt"

	"github.com/giftkart-next/internal/config"
	"github.com/giftkart-next/internal/logger"
	"github.com/giftkart-next/internal/provider"
	"github.com/giftkart-next/internal/router"
	"github.com/giftkart-next/internal/worker"
)

// BuildRunner 按启动模式装配服务组。
// 中继不受模式约束：只要配置启用就随进程一起跑，保证多进程视图一致。
func BuildRunner(cfg *config.Config, mode string) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if !validMode(mode) {
		return nil, fmt.Errorf("unknown run mode %q", mode)
	}

	container := provider.NewContainer(cfg)

	var services []Service

	if mode == ModeAll || mode == ModeAPI {
		services = append(services, NewHTTPService(cfg.Server, router.New(cfg, container)))
	}

	if (mode == ModeAll || mode == ModeWorker) && cfg.Queue.Enabled {
		workerService, err := worker.NewService(&cfg.Queue, worker.NewConsumer(container))
		if err != nil {
			return nil, err
		}
		services = append(services, workerService)
	}

	if relayService := NewRelayService(container.Relay); relayService != nil {
		services = append(services, relayService)
	}

	if len(services) == 0 {
		return nil, errors.New("no services initialized (check mode and config)")
	}
	return NewRunner(services...), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = opts.withDefaults()
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config, opts.Mode)
	if err != nil {
		return err
	}

	logger.Infow("app_start", "mode", opts.Mode, "host", opts.Config.Server.Host, "port", opts.Config.Server.Port)
	return RunWithOptions(runner, opts)
}
