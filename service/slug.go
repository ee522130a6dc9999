package service

import (
	"fmt"

	"github.com/gosimple/slug"
)

// slug 基串截断长度，给数字后缀留出余量，不会超出列宽
const maxSlugBaseLen = 240

// makeSlugBase 标题转 slug 基串并截断
func makeSlugBase(title string) string {
	base := slug.Make(title)
	if len(base) > maxSlugBaseLen {
		base = base[:maxSlugBaseLen]
	}
	return base
}

// uniqueSlug 从基串开始找第一个未占用的 slug
// 冲突时从 -1 开始递增后缀，isTaken 由调用方负责排除自身记录
func uniqueSlug(base string, isTaken func(candidate string) (bool, error)) (string, error) {
	candidate := base
	for counter := 1; ; counter++ {
		taken, err := isTaken(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
