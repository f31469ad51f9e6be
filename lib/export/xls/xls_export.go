package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	requestapimodels "request-mesh/models/api/request"
)

type Provider interface {
	ExportRequestList(list []requestapimodels.RequestView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() Provider {
	Instance = impl{}
	return Instance
}

type impl struct{}

var requestHeaders = []string{"Название", "Тип", "Срочность", "Сотрудник", "Согласующий", "Статус", "Дата создания", "Описание"}

func (i impl) ExportRequestList(list []requestapimodels.RequestView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, requestHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		if err = writeRequestData(f, sheet, list, row); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Заявки")
	return f.WriteToBuffer()
}

func writeRequestData(f *excelize.File, sheet string, list []requestapimodels.RequestView, row int) error {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(requestHeaders), len(list)+1); err != nil {
		return err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Title); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.RequestType.ToHuman()); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Urgency.ToHuman()); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Email); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.SuperiorEmail); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006 15:04")); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Description); err != nil {
			return err
		}
	}
	return nil
}
