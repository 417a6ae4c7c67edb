package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ikkim/matjip-backend/config"
	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/internal/app/repository"
	"github.com/ikkim/matjip-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// 공공 데이터 XLSX에서 식당 목록을 일괄 등록하는 도구.
// 시트 형식: 상호명 | 소재지 | 업종 | 전화번호 | 영업시간
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	restaurantRepo := repository.NewRestaurantRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	restaurants, err := readRestaurantsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total restaurants to import: %d\n", len(restaurants))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	batchSize := 1000
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	if err := restaurantRepo.BulkCreate(restaurants, batchSize); err != nil {
		log.Fatal("Failed to bulk create restaurants:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total restaurants imported: %d\n", len(restaurants))
}

func readRestaurantsFromXLSX(filePath string) ([]model.Restaurant, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var restaurants []model.Restaurant
	seen := make(map[string]bool) // 상호+소재지 중복 제거용
	skippedCount := 0

	// 첫 행은 헤더이므로 스킵
	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 2 {
			skippedCount++
			continue
		}

		name := strings.TrimSpace(row[0])     // 상호명
		location := strings.TrimSpace(row[1]) // 소재지
		if name == "" {
			skippedCount++
			continue
		}

		var cuisine, contact, hours string
		if len(row) > 2 {
			cuisine = strings.TrimSpace(row[2]) // 업종
		}
		if len(row) > 3 {
			contact = strings.TrimSpace(row[3]) // 전화번호
		}
		if len(row) > 4 {
			hours = strings.TrimSpace(row[4]) // 영업시간
		}

		key := name + "|" + location
		if seen[key] {
			skippedCount++
			continue
		}
		seen[key] = true

		// 소유자 없는 미확인 식당으로 들어가며, 이후 claim으로 소유권을 가져간다
		restaurants = append(restaurants, model.Restaurant{
			Name:     name,
			Location: location,
			Cuisine:  cuisine,
			Contact:  contact,
			Hours:    hours,
			Status:   model.RestaurantStatusApproved,
		})
	}

	fmt.Printf("Skipped rows: %d\n", skippedCount)
	return restaurants, nil
}
