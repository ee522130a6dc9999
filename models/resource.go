package models

import "time"

// 资源类型
const (
	ContentTypeArticle = "article"
	ContentTypeVideo   = "video"
	ContentTypePDF     = "pdf"
	ContentTypeCourse  = "course"
	ContentTypeOther   = "other"
)

// 难度等级，允许为空
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Resource 学习资源表
// slug 首次保存时由标题派生，冲突时追加数字后缀，之后不再变更
// avg_rating / rating_count 是评分表的冗余统计，必须和评分写入同事务更新
type Resource struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(255);not null;index:idx_resources_title" json:"title"`
	Slug        string    `gorm:"column:slug;type:varchar(255);uniqueIndex:uk_resources_slug;not null" json:"slug"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	ContentType string    `gorm:"column:content_type;type:varchar(20);not null;default:'article';index:idx_resources_ctype" json:"content_type"`
	Subject     string    `gorm:"column:subject;type:varchar(100);default:'';index:idx_resources_subject" json:"subject"`
	Difficulty  string    `gorm:"column:difficulty;type:varchar(20);default:'';index:idx_resources_difficulty" json:"difficulty"`
	CreatedBy   uint64    `gorm:"column:created_by;not null;index:idx_resources_creator" json:"created_by"`
	IsPublished bool      `gorm:"column:is_published;not null;default:true" json:"is_published"`
	AvgRating   float64   `gorm:"column:avg_rating;type:decimal(3,2);not null;default:0" json:"avg_rating"`
	RatingCount uint32    `gorm:"column:rating_count;not null;default:0" json:"rating_count"`
	CreatedAt   time.Time `gorm:"column:created_at;index:idx_resources_created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Resource) TableName() string {
	return "resources"
}

// ResourceFile 资源附件
// 只保存外部存储的 URL，文件本体不经过本服务
// 展示顺序: order 升序，再按 created_at
type ResourceFile struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	ResourceID uint64    `gorm:"column:resource_id;not null;index:idx_resource_files_resource" json:"resource_id"`
	FileURL    string    `gorm:"column:file_url;type:varchar(512);default:''" json:"file_url"`
	Label      string    `gorm:"column:label;type:varchar(100);default:''" json:"label"`
	Order      int       `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ResourceFile) TableName() string {
	return "resource_files"
}
