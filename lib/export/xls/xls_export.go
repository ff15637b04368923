package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	jobsapimodels "jobs-board-backend/models/api/jobs"
)

type Provider interface {
	ExportFavoriteJobs(list []jobsapimodels.Job) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

type column struct {
	title string
	width float64
}

const favoriteJobsSheet = "Favorite jobs"

var favoriteJobHeaders = []column{
	{title: "ID", width: 10},
	{title: "Title", width: 40},
	{title: "Company", width: 30},
	{title: "Description", width: 80},
}

func (i impl) ExportFavoriteJobs(list []jobsapimodels.Job) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("error closing xlsx file")
		}
	}()
	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, favoriteJobHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "error writing xlsx header")
	}
	if len(list) != 0 {
		if _, err = writeFavoriteJobs(f, sheet, list, row); err != nil {
			return nil, errors.Wrap(err, "error writing xlsx rows")
		}
	}
	if err = f.SetSheetName(sheet, favoriteJobsSheet); err != nil {
		return nil, errors.Wrap(err, "error renaming xlsx sheet")
	}
	return f.WriteToBuffer()
}

func writeFavoriteJobs(f *excelize.File, sheet string, list []jobsapimodels.Job, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(favoriteJobHeaders), row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		values := []interface{}{item.ID, item.Title, item.Company, item.Description}
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
