package platform

import (
	"context"

	"github.com/cloud-ru/unit-economics-go/internal/report"
)

// Host платформа обмена сообщениями, через которую можно отправить результаты.
// Если платформы нет, передается nil.
type Host interface {
	Name() string
	SendData(ctx context.Context, payload report.Payload) error
}
