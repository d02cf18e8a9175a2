package bot

import (
	"context"
	"fmt"

	"scoreboard/pkg/logx"
)

// slogAdapter пишет внутренний лог telego в slog.
type slogAdapter struct {
	masker logx.SensitiveDataMaskerInterface
}

func newSlogAdapter(masker logx.SensitiveDataMaskerInterface) slogAdapter {
	return slogAdapter{masker: masker}
}

func (a slogAdapter) Debugf(format string, args ...any) {
	logger(context.Background()).Debug(a.format(format, args...))
}

func (a slogAdapter) Errorf(format string, args ...any) {
	logger(context.Background()).Error(a.format(format, args...))
}

func (a slogAdapter) format(format string, args ...any) string {
	return string(a.masker.Mask([]byte(fmt.Sprintf(format, args...))))
}
