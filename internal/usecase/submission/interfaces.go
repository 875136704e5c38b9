package submission

import (
	"github.com/futig/interview-assistant/internal/entity"
	"github.com/futig/interview-assistant/internal/pkg/formatter"
)

type FormatterFactory interface {
	Create(format entity.ExportFormat) (formatter.Formatter, error)
}
