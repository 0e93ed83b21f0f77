package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloud-ru/unit-economics-go/internal/calculations"
	"github.com/cloud-ru/unit-economics-go/internal/format"
)

// Типы сообщений, которые получает бот
const (
	TypeShare  = "unit_economics_results"
	TypeExport = "export_results"
)

const timestampLayout = "02.01.2006, 15:04:05"

// Results отформатированные показатели расчета. Налоги попадают только в экспорт.
type Results struct {
	Margin        string `json:"margin"`
	Profitability string `json:"profitability"`
	Profit5       string `json:"profit5"`
	Profit7       string `json:"profit7"`
	Profit2       string `json:"profit2"`
	Tax5          string `json:"tax5,omitempty"`
	Tax7          string `json:"tax7,omitempty"`
	Tax2          string `json:"tax2,omitempty"`
}

// Snapshot снимок входных данных и результатов на момент экспорта
type Snapshot struct {
	Timestamp string                 `json:"timestamp"`
	Inputs    calculations.FormInput `json:"inputs"`
	Results   Results                `json:"results"`

	TakenAt time.Time `json:"-"`
}

// Payload сообщение для платформы: данные плюс готовый текст
type Payload struct {
	Type    string   `json:"type"`
	Data    Snapshot `json:"data"`
	Message string   `json:"message"`
}

// NewShareSnapshot собирает снимок для кнопки "Поделиться"
func NewShareSnapshot(now time.Time, in calculations.FormInput, r format.Rendered) Snapshot {
	return Snapshot{
		Timestamp: now.Format(timestampLayout),
		Inputs:    in,
		Results: Results{
			Margin:        r.Margin,
			Profitability: r.Profitability,
			Profit5:       r.Profit5,
			Profit7:       r.Profit7,
			Profit2:       r.Profit2,
		},
		TakenAt: now,
	}
}

// NewExportSnapshot собирает снимок для экспорта, включая суммы налогов
func NewExportSnapshot(now time.Time, in calculations.FormInput, r format.Rendered) Snapshot {
	s := NewShareSnapshot(now, in, r)
	s.Results.Tax5 = r.Tax5
	s.Results.Tax7 = r.Tax7
	s.Results.Tax2 = r.Tax2
	return s
}

// ExportFileName имя файла экспорта по дате расчета в формате ISO.
// Для n > 0 добавляется номер копии: "unit-economics-2026-10-16 (1).json".
func ExportFileName(t time.Time, n int) string {
	date := t.Format("2006-01-02")
	if n > 0 {
		return fmt.Sprintf("unit-economics-%s (%d).json", date, n)
	}
	return fmt.Sprintf("unit-economics-%s.json", date)
}

// MarshalFile сериализует снимок в JSON для сохранения в файл
func MarshalFile(s Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("не удалось сериализовать снимок: %w", err)
	}
	return data, nil
}
