package service

import (
	"Mindshare/dao"
	"Mindshare/models"
	"Mindshare/pkg/snowflake"
	"Mindshare/types"
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"Mindshare/pkg/response"
)

const maxTagNameLen = 64

var _ ITagService = (*TagService)(nil)

type TagService struct {
	TagDAO         *dao.Tag
	ResourceTagDAO *dao.ResourceTag
}

type ITagService interface {
	ResolveTags(ctx context.Context, names []string) ([]*models.Tag, error)
	GetResourceTags(ctx context.Context, resourceID uint64) ([]types.TagItem, error)
	ListTags(ctx context.Context) ([]types.TagItem, error)
}

var innerSpaces = regexp.MustCompile(`\s+`)

// normalizeTagName 标签名规范化
// 去掉前后空白和前缀 #，内部连续空白折叠成单个空格
// 大小写保留："python" 和 "Python" 是两个标签，与原有行为一致
func normalizeTagName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "#")
	name = innerSpaces.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

func validateTagName(name string) error {
	if name == "" {
		return response.NewError(http.StatusBadRequest, "标签名不能为空")
	}
	if len(name) > maxTagNameLen {
		return response.NewError(http.StatusBadRequest, fmt.Sprintf("标签名不能超过%d个字符", maxTagNameLen))
	}
	return nil
}

// ResolveTags 按名称批量解析标签，不存在的创建
// 幂等：同名只会有一行，重复解析不会产生重复标签
// 并发创建同名标签靠唯一索引兜底，冲突后重查拿已有记录
func (ts *TagService) ResolveTags(ctx context.Context, names []string) ([]*models.Tag, error) {
	if len(names) == 0 {
		return []*models.Tag{}, nil
	}

	// 1. 规范化 + 去重，保留首次出现的顺序
	normalized := make([]string, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		n := normalizeTagName(name)
		if n == "" || seen[n] {
			continue
		}
		if err := validateTagName(n); err != nil {
			return nil, err
		}
		seen[n] = true
		normalized = append(normalized, n)
	}
	if len(normalized) == 0 {
		return []*models.Tag{}, nil
	}

	// 2. 批量查已有标签
	existing, err := ts.TagDAO.BatchFindByNames(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("批量查询标签失败: %w", err)
	}

	// 3. 不存在的批量创建
	// 同一批里 "python" 和 "Python" 会派生出相同的 slug 基串，
	// 库里查不到但批内已占用，所以占用判断要同时看两边
	toCreate := make([]*models.Tag, 0)
	assigned := make(map[string]bool)
	now := time.Now()
	for _, name := range normalized {
		if _, ok := existing[name]; ok {
			continue
		}
		tagSlug, err := ts.uniqueTagSlug(ctx, name, assigned)
		if err != nil {
			return nil, err
		}
		assigned[tagSlug] = true
		toCreate = append(toCreate, &models.Tag{
			ID:        uint64(snowflake.GenID()),
			Name:      name,
			Slug:      tagSlug,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	if len(toCreate) > 0 {
		if err := ts.TagDAO.BatchCreate(ctx, toCreate); err != nil {
			return nil, fmt.Errorf("批量创建标签失败: %w", err)
		}
		// OnConflict DoNothing 后重查，并发冲突时拿到别人先插入的那行
		existing, err = ts.TagDAO.BatchFindByNames(ctx, normalized)
		if err != nil {
			return nil, fmt.Errorf("批量查询标签失败: %w", err)
		}
	}

	// 4. 按入参顺序返回
	result := make([]*models.Tag, 0, len(normalized))
	for _, name := range normalized {
		tag, ok := existing[name]
		if !ok {
			// MySQL 默认排序规则下 name 唯一索引不区分大小写，
			// "Python" 的插入会撞到已有的 "python"，单查把那行捞回来
			tag, err = ts.TagDAO.FindByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if tag == nil {
				return nil, fmt.Errorf("标签 '%s' 创建后未找到", name)
			}
		}
		result = append(result, tag)
	}
	return result, nil
}

// uniqueTagSlug 标签 slug 派生，同名不同形的标签可能撞 slug，递增后缀避开
// assigned 是本批次里已经派生出去、还没落库的 slug
func (ts *TagService) uniqueTagSlug(ctx context.Context, name string, assigned map[string]bool) (string, error) {
	base := makeSlugBase(name)
	if base == "" {
		base = "tag"
	}
	return uniqueSlug(base, func(candidate string) (bool, error) {
		if assigned[candidate] {
			return true, nil
		}
		return ts.TagDAO.IsExist(ctx, "slug = ?", candidate)
	})
}

// GetResourceTags 资源标签投影 {id, name, slug}，顺序 = 当前关联顺序
func (ts *TagService) GetResourceTags(ctx context.Context, resourceID uint64) ([]types.TagItem, error) {
	tags, err := ts.ResourceTagDAO.FindByResourceID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	items := make([]types.TagItem, 0, len(tags))
	for _, tag := range tags {
		items = append(items, types.TagItem{
			ID:   tag.ID,
			Name: tag.Name,
			Slug: tag.Slug,
		})
	}
	return items, nil
}

// ListTags 全部标签
func (ts *TagService) ListTags(ctx context.Context) ([]types.TagItem, error) {
	tags, err := ts.TagDAO.FindAll(ctx, "1 = 1")
	if err != nil {
		return nil, err
	}
	items := make([]types.TagItem, 0, len(tags))
	for _, tag := range tags {
		items = append(items, types.TagItem{
			ID:   tag.ID,
			Name: tag.Name,
			Slug: tag.Slug,
		})
	}
	return items, nil
}
