package seed

import (
	_ "embed"
	"fmt"

	"qenea/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed builtin_tags.yaml
var builtinTagsYAML []byte

// BuiltInTags returns the permanent tags shipped with the application.
func BuiltInTags() ([]string, error) {
	var doc struct {
		Tags []string `yaml:"tags"`
	}
	if err := yaml.Unmarshal(builtinTagsYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse built-in tags: %w", err)
	}
	return doc.Tags, nil
}

// Tags seeds the built-in tags. Existing tags are left untouched so the seed
// is safe to run on every startup.
func Tags(db *gorm.DB) error {
	names, err := BuiltInTags()
	if err != nil {
		return err
	}

	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, models.Tag{Name: name})
	}

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&tags).Error; err != nil {
		return fmt.Errorf("seed built-in tags: %w", err)
	}
	return nil
}
