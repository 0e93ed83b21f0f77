package platform

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/cloud-ru/unit-economics-go/internal/logger"
	"github.com/cloud-ru/unit-economics-go/internal/metrics"
	"github.com/cloud-ru/unit-economics-go/internal/report"
)

// ErrNoHost платформа для отправки не подключена
var ErrNoHost = errors.New("платформа обмена сообщениями не подключена")

// Сколько файлов экспорта за один день сохраняется сверх первого
const maxExportCopies = 99

// Куда были доставлены результаты
const (
	DestinationHost = "host"
	DestinationFile = "file"
)

// Delivery описывает, куда ушли результаты
type Delivery struct {
	Destination string `json:"destination"`
	Host        string `json:"host,omitempty"`
	Path        string `json:"path,omitempty"`
}

// Exporter отправляет результаты через платформу, а без нее сохраняет в файл
type Exporter struct {
	host      Host
	composer  *report.Composer
	exportDir string
}

// NewExporter создает Exporter. host может быть nil.
func NewExporter(host Host, composer *report.Composer, exportDir string) *Exporter {
	return &Exporter{
		host:      host,
		composer:  composer,
		exportDir: exportDir,
	}
}

// HasHost сообщает, подключена ли платформа
func (e *Exporter) HasHost() bool {
	return e.host != nil
}

// Share отправляет короткое сообщение с результатами. Без платформы возвращает ErrNoHost.
func (e *Exporter) Share(ctx context.Context, s report.Snapshot) (Delivery, report.Payload, error) {
	payload, err := e.composer.SharePayload(s)
	if err != nil {
		return Delivery{}, report.Payload{}, err
	}
	if e.host == nil {
		metrics.Exports.WithLabelValues(DestinationHost, "no_host").Inc()
		return Delivery{}, payload, ErrNoHost
	}

	delivery, err := e.send(ctx, payload)
	return delivery, payload, err
}

// Export отправляет подробный отчет через платформу или сохраняет JSON-файл
func (e *Exporter) Export(ctx context.Context, s report.Snapshot) (Delivery, report.Payload, error) {
	payload, err := e.composer.ExportPayload(s)
	if err != nil {
		return Delivery{}, report.Payload{}, err
	}
	if e.host != nil {
		delivery, err := e.send(ctx, payload)
		return delivery, payload, err
	}

	path, err := e.writeFile(ctx, s)
	if err != nil {
		metrics.Exports.WithLabelValues(DestinationFile, "error").Inc()
		logger.Log.Error("не удалось сохранить экспорт", zap.Error(err))
		return Delivery{}, payload, err
	}
	metrics.Exports.WithLabelValues(DestinationFile, "success").Inc()
	logger.Log.Info("результаты экспортированы в файл", zap.String("path", path))

	return Delivery{Destination: DestinationFile, Path: path}, payload, nil
}

func (e *Exporter) send(ctx context.Context, payload report.Payload) (Delivery, error) {
	log := logger.With(zap.String("host", e.host.Name()), zap.String("type", payload.Type))

	if err := e.host.SendData(ctx, payload); err != nil {
		metrics.Exports.WithLabelValues(DestinationHost, "error").Inc()
		log.Error("не удалось отправить результаты", zap.Error(err))
		return Delivery{}, fmt.Errorf("отправка через %s: %w", e.host.Name(), err)
	}

	metrics.Exports.WithLabelValues(DestinationHost, "success").Inc()
	log.Info("результаты отправлены")
	return Delivery{Destination: DestinationHost, Host: e.host.Name()}, nil
}

func (e *Exporter) writeFile(ctx context.Context, s report.Snapshot) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := report.MarshalFile(s)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(e.exportDir, 0o755); err != nil {
		return "", fmt.Errorf("не удалось создать каталог экспорта: %w", err)
	}

	for n := 0; n <= maxExportCopies; n++ {
		path := filepath.Join(e.exportDir, report.ExportFileName(s.TakenAt, n))
		err := writeNewFile(path, data)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("не удалось записать файл экспорта: %w", err)
		}
		return path, nil
	}
	return "", fmt.Errorf("за %s уже сохранено %d экспортов", s.TakenAt.Format("2006-01-02"), maxExportCopies+1)
}

// writeNewFile создает файл и не перезаписывает существующий
func writeNewFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
