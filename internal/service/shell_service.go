package service

import (
	"sync"

	"github.com/dafibh/tabi/tabi-backend/internal/domain"
)

// ShellService holds the tab shell state for the running session
type ShellService struct {
	mu    sync.Mutex
	shell domain.Shell
}

// NewShellService creates a ShellService on the default pane
func NewShellService() *ShellService {
	return &ShellService{shell: domain.NewShell()}
}

// Current returns the active pane and scroll offset
func (s *ShellService) Current() domain.Shell {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shell
}

// Switch activates the named pane. Unknown names leave the state unchanged.
func (s *ShellService) Switch(name string) (domain.Shell, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.shell.Switch(domain.Pane(name)); err != nil {
		return s.shell, err
	}
	return s.shell, nil
}

// Scroll records the scroll offset of the active pane
func (s *ShellService) Scroll(offset int) domain.Shell {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shell.Scroll(offset)
	return s.shell
}
