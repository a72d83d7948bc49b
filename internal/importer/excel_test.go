// internal/importer/excel_test.go
package importer

import (
	"context"
	"path/filepath"
	"testing"

	"linguaquest/internal/model"
	"linguaquest/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBImporter(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.VocabularyItem{}))
	return db
}

// テスト用のxlsxファイルを作る
func writeTestWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			cellName, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cellName, cell))
		}
	}

	path := filepath.Join(t.TempDir(), "vocabulary.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestExcelImporter_ImportFile(t *testing.T) {
	ctx := context.Background()

	header := []string{"Amharic", "German", "English", "French", "Spanish", "Lesson"}

	t.Run("正常系: 新規行が取り込まれ、空セルはNULLになる", func(t *testing.T) {
		db := setupTestDBImporter(t)
		imp := NewExcelImporter(db, repository.NewGormVocabularyRepository())

		path := writeTestWorkbook(t, [][]string{
			header,
			{"ውሃ", "Wasser", "water", "eau", "agua", "lesson1"},
			{"እንጀራ", "Brot", "", "", "", "lesson1"},
		})

		result, err := imp.ImportFile(ctx, path, "")
		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalProcessed)
		assert.Equal(t, 2, result.Created)
		assert.Equal(t, 0, result.Updated)
		assert.Empty(t, result.Errors)

		var item model.VocabularyItem
		require.NoError(t, db.Where("amharic_term = ?", "እንጀራ").First(&item).Error)
		require.NotNil(t, item.GermanTerm)
		assert.Equal(t, "Brot", *item.GermanTerm)
		assert.Nil(t, item.EnglishTerm)
		assert.Nil(t, item.FrenchTerm)
	})

	t.Run("正常系: 既存の語は更新され、重複行は作られない", func(t *testing.T) {
		db := setupTestDBImporter(t)
		imp := NewExcelImporter(db, repository.NewGormVocabularyRepository())

		first := writeTestWorkbook(t, [][]string{
			header,
			{"ውሃ", "Wasser", "", "", "", "lesson1"},
		})
		_, err := imp.ImportFile(ctx, first, "")
		require.NoError(t, err)

		second := writeTestWorkbook(t, [][]string{
			header,
			{"ውሃ", "Wasser", "water", "", "", "lesson2"},
		})
		result, err := imp.ImportFile(ctx, second, "")
		require.NoError(t, err)
		assert.Equal(t, 0, result.Created)
		assert.Equal(t, 1, result.Updated)

		var count int64
		require.NoError(t, db.Model(&model.VocabularyItem{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)

		var item model.VocabularyItem
		require.NoError(t, db.Where("amharic_term = ?", "ውሃ").First(&item).Error)
		require.NotNil(t, item.EnglishTerm)
		assert.Equal(t, "water", *item.EnglishTerm)
		assert.Equal(t, "lesson2", item.Lesson)
	})

	t.Run("正常系: アムハラ語が空の行はスキップ", func(t *testing.T) {
		db := setupTestDBImporter(t)
		imp := NewExcelImporter(db, repository.NewGormVocabularyRepository())

		path := writeTestWorkbook(t, [][]string{
			header,
			{"", "Wasser", "", "", "", "lesson1"},
			{"ውሃ", "Wasser", "", "", "", "lesson1"},
		})

		result, err := imp.ImportFile(ctx, path, "")
		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalProcessed)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("異常系: 存在しないファイル", func(t *testing.T) {
		db := setupTestDBImporter(t)
		imp := NewExcelImporter(db, repository.NewGormVocabularyRepository())

		result, err := imp.ImportFile(ctx, "/no/such/file.xlsx", "")
		require.Error(t, err)
		assert.Nil(t, result)
	})
}
