package utils

import (
	"context"
	"encoding/json"
	"fmt"
	mathrand "math/rand"
	"time"

	"portfolio/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultNumArticles = 50
	DefaultNumProjects = 12

	// SeedSlugPrefix marks generated rows so they can be removed again.
	SeedSlugPrefix = "sample-"

	seedBatchSize = 100
)

var (
	seedCategories = []string{"engineering", "design", "notes", "life"}
	seedTags       = []string{"go", "postgres", "gin", "redis", "frontend", "devops", "testing"}
	seedStack      = []string{"Go", "Gin", "PostgreSQL", "Redis", "React", "Docker", "Prometheus"}
)

// SeedContent inserts sample articles and projects plus default site
// settings. Rows whose slug already exists are skipped, so reseeding is safe.
func SeedContent(ctx context.Context, db *gorm.DB, numArticles, numProjects int, seed int64) error {
	rng := mathrand.New(mathrand.NewSource(seed))
	now := time.Now().UTC()

	articles := make([]models.Article, 0, numArticles)
	for i := 1; i <= numArticles; i++ {
		a := models.Article{
			TitleZh:   fmt.Sprintf("示例文章 %d", i),
			TitleEn:   fmt.Sprintf("Sample article %d", i),
			Slug:      fmt.Sprintf("%sarticle-%d", SeedSlugPrefix, i),
			ContentZh: "这是一篇示例文章。",
			ContentEn: "This is a sample article.",
			ExcerptEn: fmt.Sprintf("Excerpt for sample article %d", i),
			Category:  seedCategories[rng.Intn(len(seedCategories))],
			Tags:      pick(rng, seedTags, 1+rng.Intn(3)),
			Status:    weightedStatus(rng),
			Author:    "admin",
			ViewCount: int64(rng.Intn(500)),
		}
		a.MarkPublished(now.Add(-time.Duration(rng.Intn(365*24)) * time.Hour))
		articles = append(articles, a)
	}

	projects := make([]models.Project, 0, numProjects)
	for i := 1; i <= numProjects; i++ {
		status := models.StatusPublished
		if rng.Intn(4) == 0 {
			status = models.StatusDraft
		}
		projects = append(projects, models.Project{
			TitleZh:       fmt.Sprintf("示例项目 %d", i),
			TitleEn:       fmt.Sprintf("Sample project %d", i),
			Slug:          fmt.Sprintf("%sproject-%d", SeedSlugPrefix, i),
			DescriptionEn: "A sample project.",
			TechStack:     pick(rng, seedStack, 2+rng.Intn(3)),
			GithubURL:     fmt.Sprintf("https://github.com/example/sample-%d", i),
			Featured:      rng.Intn(3) == 0,
			Status:        status,
		})
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		skipDuplicates := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "slug"}}, DoNothing: true})
		if len(articles) > 0 {
			if err := skipDuplicates.CreateInBatches(&articles, seedBatchSize).Error; err != nil {
				return fmt.Errorf("seed articles: %w", err)
			}
		}
		if len(projects) > 0 {
			if err := skipDuplicates.CreateInBatches(&projects, seedBatchSize).Error; err != nil {
				return fmt.Errorf("seed projects: %w", err)
			}
		}
		if err := seedSiteSettings(tx); err != nil {
			return err
		}

		zap.L().Info("seeded sample content",
			zap.Int("articles", len(articles)),
			zap.Int("projects", len(projects)),
		)
		return nil
	})
}

func seedSiteSettings(tx *gorm.DB) error {
	defaults := map[string]interface{}{
		"site_title":    map[string]string{"zh": "我的作品集", "en": "My Portfolio"},
		"contact_email": "hello@example.com",
		"socials":       map[string]string{"github": "https://github.com/example"},
	}

	settings := make([]models.SiteSetting, 0, len(defaults))
	for key, value := range defaults {
		raw, err := json.Marshal(value)
		if err != nil {
			return err
		}
		settings = append(settings, models.SiteSetting{Key: key, Value: raw})
	}

	err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "key"}}, DoNothing: true}).
		Create(&settings).Error
	if err != nil {
		return fmt.Errorf("seed site settings: %w", err)
	}
	return nil
}

// CleanupSeedContent removes every row SeedContent created.
func CleanupSeedContent(ctx context.Context, db *gorm.DB) (int64, error) {
	var removed int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.Article{}, &models.Project{}} {
			result := tx.Where("slug LIKE ?", SeedSlugPrefix+"%").Delete(model)
			if result.Error != nil {
				return result.Error
			}
			removed += result.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	zap.L().Info("deleted sample content", zap.Int64("rows", removed))
	return removed, nil
}

// ContentCounts reports the row count of each content table.
func ContentCounts(ctx context.Context, db *gorm.DB) (map[string]int64, error) {
	counts := make(map[string]int64)
	tables := map[string]interface{}{
		"articles": &models.Article{},
		"projects": &models.Project{},
		"messages": &models.Message{},
	}
	for name, model := range tables {
		var n int64
		if err := db.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", name, err)
		}
		counts[name] = n
	}
	return counts, nil
}

func weightedStatus(rng *mathrand.Rand) string {
	switch n := rng.Intn(10); {
	case n < 6:
		return models.StatusPublished
	case n < 9:
		return models.StatusDraft
	default:
		return models.StatusArchived
	}
}

// pick returns n distinct values from pool in random order.
func pick(rng *mathrand.Rand, pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, 0, n)
	for _, i := range rng.Perm(len(pool))[:n] {
		out = append(out, pool[i])
	}
	return out
}
