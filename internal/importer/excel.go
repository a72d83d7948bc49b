// internal/importer/excel.go
package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"linguaquest/internal/middleware"
	"linguaquest/internal/model"
	"linguaquest/internal/repository"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// 取込ファイルの列レイアウト（1行目はヘッダー）:
//   A: アムハラ語, B: ドイツ語, C: 英語, D: フランス語, E: スペイン語, F: レッスン
const (
	colAmharic = 0
	colGerman  = 1
	colEnglish = 2
	colFrench  = 3
	colSpanish = 4
	colLesson  = 5
)

// Result は取込処理の集計です
type Result struct {
	TotalProcessed int
	Created        int
	Updated        int
	Skipped        int
	Errors         []string
}

type ExcelImporter struct {
	db        *gorm.DB
	vocabRepo repository.VocabularyRepository
}

func NewExcelImporter(db *gorm.DB, vocabRepo repository.VocabularyRepository) *ExcelImporter {
	return &ExcelImporter{db: db, vocabRepo: vocabRepo}
}

// ImportFile はExcelファイルから語彙カタログを取り込みます。
// アムハラ語の語をキーに既存行を更新、無ければ新規作成する。
// 行単位のエラーは集計に積んで処理を続行する。
func (imp *ExcelImporter) ImportFile(ctx context.Context, filePath, sheetName string) (*Result, error) {
	logger := middleware.GetLogger(ctx)

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("ExcelImporter.ImportFile: failed to open file: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("ExcelImporter.ImportFile: failed to read sheet %q: %w", sheetName, err)
	}

	result := &Result{Errors: make([]string, 0)}

	for i, row := range rows {
		if i == 0 {
			// ヘッダー行
			continue
		}
		result.TotalProcessed++

		if err := imp.importRow(ctx, row, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
		}
	}

	logger.Info("Vocabulary import finished",
		"file", filePath,
		"processed", result.TotalProcessed,
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
	)
	return result, nil
}

func (imp *ExcelImporter) importRow(ctx context.Context, row []string, result *Result) error {
	amharic := cellAt(row, colAmharic)
	if amharic == "" {
		result.Skipped++
		return nil
	}

	item := &model.VocabularyItem{
		WordID:      uuid.New(),
		AmharicTerm: amharic,
		GermanTerm:  optionalCell(row, colGerman),
		EnglishTerm: optionalCell(row, colEnglish),
		FrenchTerm:  optionalCell(row, colFrench),
		SpanishTerm: optionalCell(row, colSpanish),
		Lesson:      cellAt(row, colLesson),
	}

	return imp.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := imp.vocabRepo.FindByAmharicTerm(ctx, tx, amharic)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return err
		}

		if existing != nil {
			existing.GermanTerm = item.GermanTerm
			existing.EnglishTerm = item.EnglishTerm
			existing.FrenchTerm = item.FrenchTerm
			existing.SpanishTerm = item.SpanishTerm
			existing.Lesson = item.Lesson
			if err := tx.Save(existing).Error; err != nil {
				return err
			}
			result.Updated++
			return nil
		}

		if err := imp.vocabRepo.Create(ctx, tx, item); err != nil {
			return err
		}
		result.Created++
		return nil
	})
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// optionalCell は空セルをNULLとして扱うためにnilを返します
func optionalCell(row []string, idx int) *string {
	v := cellAt(row, idx)
	if v == "" {
		return nil
	}
	return &v
}
