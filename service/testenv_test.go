package service

import (
	"Mindshare/dao"
	"Mindshare/models"
	"Mindshare/pkg/snowflake"
	"Mindshare/types"
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv 内存库 + 全套服务
// Redis 指向不可达地址，缓存路径全部走降级分支
type testEnv struct {
	db        *gorm.DB
	users     *UserService
	tags      *TagService
	resources *ResourceService
	ratings   *RatingService
	bookmarks *BookmarkService
	comments  *CommentService
	mindmaps  *MindMapService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存库失败: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取连接失败: %v", err)
	}
	// 内存库只能用单连接，多连接各自是独立的库
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Users{}, &models.Profile{},
		&models.Tag{}, &models.ResourceTag{},
		&models.Resource{}, &models.ResourceFile{},
		&models.Comment{}, &models.Rating{}, &models.Bookmark{},
		&models.MindMap{}, &models.MindMapNode{},
	)
	if err != nil {
		t.Fatalf("建表失败: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 10 * time.Millisecond,
		ReadTimeout: 10 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { rdb.Close() })

	userService := &UserService{
		DB:         db,
		UserDAO:    dao.NewUsers(db),
		ProfileDAO: dao.NewProfile(db),
	}
	tagService := &TagService{
		TagDAO:         dao.NewTag(db),
		ResourceTagDAO: dao.NewResourceTag(db),
	}
	resourceService := &ResourceService{
		DB:             db,
		ResourceDAO:    dao.NewResource(db),
		FileDAO:        dao.NewResourceFile(db),
		ResourceTagDAO: dao.NewResourceTag(db),
		CommentDAO:     dao.NewComment(db),
		RatingDAO:      dao.NewRating(db),
		BookmarkDAO:    dao.NewBookmark(db),
		NodeDAO:        dao.NewMindMapNode(db),
		TagService:     tagService,
		UserService:    userService,
		Redis:          rdb,
	}
	ratingService := &RatingService{
		DB:              db,
		RatingDAO:       dao.NewRating(db),
		ResourceDAO:     dao.NewResource(db),
		UserService:     userService,
		ResourceService: resourceService,
	}
	bookmarkService := &BookmarkService{
		BookmarkDAO:     dao.NewBookmark(db),
		ResourceDAO:     dao.NewResource(db),
		ResourceService: resourceService,
		Redis:           rdb,
	}
	commentService := &CommentService{
		DB:          db,
		CommentDAO:  dao.NewComment(db),
		ResourceDAO: dao.NewResource(db),
		UserService: userService,
	}
	mindmapService := &MindMapService{
		DB:          db,
		MindMapDAO:  dao.NewMindMap(db),
		NodeDAO:     dao.NewMindMapNode(db),
		ResourceDAO: dao.NewResource(db),
		UserService: userService,
	}

	return &testEnv{
		db:        db,
		users:     userService,
		tags:      tagService,
		resources: resourceService,
		ratings:   ratingService,
		bookmarks: bookmarkService,
		comments:  commentService,
		mindmaps:  mindmapService,
	}
}

func (e *testEnv) createUser(t *testing.T, username string) uint64 {
	t.Helper()
	now := time.Now()
	user := &models.Users{
		ID:        uint64(snowflake.GenUserID()),
		Username:  username,
		Email:     username + "@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := e.db.Create(user).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return user.ID
}

func (e *testEnv) createResource(t *testing.T, userID uint64, title string) uint64 {
	t.Helper()
	resp, err := e.resources.CreateResource(context.Background(), userID, &types.CreateResourceRequest{Title: title})
	if err != nil {
		t.Fatalf("创建资源失败: %v", err)
	}
	return resp.ID
}
