package service

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

type Logger interface {
	Error(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Info(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

type (
	Service interface {
		Name() string
		Init() error
		Run(ctx context.Context)
		Stop()
	}
	Services interface {
		AddService(service ...Service)
		Run(ctx context.Context) error
	}
	Manager struct {
		log      Logger
		services []Service
	}
)

func NewManager(log Logger) *Manager {
	return &Manager{log: log}
}

func (s *Manager) AddService(service ...Service) {
	s.services = append(s.services, service...)
}

// Run starts every service and blocks until ctx is done or the process
// receives SIGINT/SIGTERM. A failed Init stops the services already started.
func (s *Manager) Run(ctx context.Context) error {
	s.log.Info("going to start %d services", len(s.services))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for count, svc := range s.services {
		if err := svc.Init(); err != nil {
			s.log.Error("failed to init %s: %v", svc.Name(), err)
			for i := 0; i < count; i++ {
				s.services[i].Stop()
			}
			return err
		}
		s.log.Info("%s started", svc.Name())
		go svc.Run(runCtx)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)

	select {
	case <-c:
	case <-ctx.Done():
	}
	s.stop()

	return nil
}

func (s *Manager) stop() {
	s.log.Info("going to stop")
	for _, svc := range s.services {
		svc.Stop()
		s.log.Info("%s stopped", svc.Name())
	}
}
