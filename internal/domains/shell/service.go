package shell

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/rs/zerolog/log"

	"github.com/lanreach/wifi-extender-agent/internal/domains/shell/commands"
)

type Service struct{}

func NewService() *Service {
	return new(Service)
}

func (s *Service) Exec(command commands.ICommand) (err error) {
	if _, err = s.ExecOutput(command); err != nil {
		return fmt.Errorf("Exec: %w", err)
	}

	return nil
}

func (s *Service) ExecOutput(command commands.ICommand) (output []byte, err error) {
	return s.ExecOutputContext(context.Background(), command)
}

func (s *Service) ExecContext(ctx context.Context, command commands.ICommand) (err error) {
	if _, err = s.ExecOutputContext(ctx, command); err != nil {
		return fmt.Errorf("ExecContext: %w", err)
	}

	return nil
}

func (s *Service) ExecOutputContext(ctx context.Context, command commands.ICommand) (output []byte, err error) {
	execCmd := exec.CommandContext(ctx, command.Name(), command.Args()...)
	log.Debug().Str("cmd", command.String()).Msg("ExecOutputContext: executing command")

	output, err = execCmd.CombinedOutput()
	if err != nil {
		return output, fmt.Errorf("ExecOutputContext: %s: %w: output: %s", command.String(), err, string(output))
	}

	return output, nil
}
