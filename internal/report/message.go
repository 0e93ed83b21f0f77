package report

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/cloud-ru/unit-economics-go/internal/format"
	"github.com/cloud-ru/unit-economics-go/pkg/utils"
)

const shareTemplate = `📊 *Результаты расчета юнит-экономики*

💰 *Основные параметры:*
• Продано единиц: {{plain .Inputs.UnitsSold}}
• Цена продажи: {{plain .Inputs.SellingPrice}} руб.
• Закупочная цена: {{plain .Inputs.PurchasePrice}} руб.
• Комиссия ВБ: {{plain .Inputs.WBCommissionPercent}}%

📈 *Результаты:*
• Маржинальность: {{.Results.Margin}}
• Рентабельность: {{.Results.Profitability}}
• Прибыль (5%): {{.Results.Profit5}}
• Прибыль (7%): {{.Results.Profit7}}
• Прибыль (2%): {{.Results.Profit2}}

🤖 *Калькулятор:* {{signature}}`

const exportTemplate = `📊 *ЭКСПОРТ РАСЧЕТА ЮНИТ-ЭКОНОМИКИ*
🕐 *Дата:* {{.Timestamp}}

💼 *ВХОДНЫЕ ДАННЫЕ:*
• Продано единиц: {{plain .Inputs.UnitsSold}}
• Цена продажи: {{money .Inputs.SellingPrice}}
• Закупочная цена: {{money .Inputs.PurchasePrice}}
• Логистика ВБ: {{money .Inputs.Logistics}}
• Фулфилмент: {{money .Inputs.Fulfillment}}
• Платная приемка: {{money .Inputs.PaidAcceptance}}
• Комиссия ВБ: {{plain .Inputs.WBCommissionPercent}}%
• Стоимость хранения: {{money .Inputs.StorageCost}}
• Реклама: {{money .Inputs.Advertising}}
• Процент выкупа: {{plain .Inputs.RedemptionRatePercent}}%

💰 *НАЛОГООБЛОЖЕНИЕ:*
• Налог 2%: {{.Results.Tax2}}
• Налог 5%: {{.Results.Tax5}}
• Налог 7%: {{.Results.Tax7}}

📈 *ПРИБЫЛЬ ПОСЛЕ НАЛОГОВ:*
• При ставке 2%: {{.Results.Profit2}}
• При ставке 5%: {{.Results.Profit5}}
• При ставке 7%: {{.Results.Profit7}}

🎯 *КЛЮЧЕВЫЕ МЕТРИКИ:*
• Маржинальность: {{.Results.Margin}}
• Рентабельность: {{.Results.Profitability}}

📋 *ДЕТАЛЬНАЯ СВОДКА:*
Общая себестоимость = Закупочная цена + Логистика + Фулфилмент + Платная приемка + Хранение + Реклама

🤖 *Калькулятор создан:* {{signatureLink}}
📱 *Для селлеров Wildberries*`

// Composer собирает сообщения для отправки через платформу
type Composer struct {
	share  *template.Template
	export *template.Template
}

// NewComposer создает Composer с подписью калькулятора (например, "@MaksimovWB")
func NewComposer(signature string) *Composer {
	funcs := template.FuncMap{
		"plain":         utils.PlainNumber,
		"money":         format.Money,
		"signature":     func() string { return signature },
		"signatureLink": func() string { return signatureLink(signature) },
	}

	return &Composer{
		share:  template.Must(template.New("share").Funcs(funcs).Parse(shareTemplate)),
		export: template.Must(template.New("export").Funcs(funcs).Parse(exportTemplate)),
	}
}

// SharePayload короткое сообщение с основными показателями
func (c *Composer) SharePayload(s Snapshot) (Payload, error) {
	msg, err := execute(c.share, s)
	if err != nil {
		return Payload{}, err
	}
	return Payload{Type: TypeShare, Data: s, Message: msg}, nil
}

// ExportPayload подробное сообщение со всеми статьями расходов и налогами
func (c *Composer) ExportPayload(s Snapshot) (Payload, error) {
	msg, err := execute(c.export, s)
	if err != nil {
		return Payload{}, err
	}
	return Payload{Type: TypeExport, Data: s, Message: msg}, nil
}

func execute(t *template.Template, s Snapshot) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, s); err != nil {
		return "", fmt.Errorf("ошибка шаблона %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}

// signatureLink превращает @username в markdown-ссылку на Telegram
func signatureLink(signature string) string {
	name, ok := strings.CutPrefix(signature, "@")
	if !ok || name == "" {
		return signature
	}
	return fmt.Sprintf("[%s](https://t.me/%s)", signature, name)
}
