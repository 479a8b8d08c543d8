package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	v1 "snapgram/api/v1"
	"snapgram/config"
	"snapgram/dao"
	"snapgram/internal/media"
	myvalidator "snapgram/internal/validator"
	"snapgram/middleware"
	"snapgram/model"
	"snapgram/service"
)

func main() {
	// 初始化配置
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../"
	}
	config.InitConfig(configPath)
	config.InitRedis()

	// 初始化数据库
	db, err := gorm.Open(mysql.Open(config.GlobalConfig.MySQL.DSN), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	// 自动迁移
	if err := db.AutoMigrate(&model.User{}, &model.Post{}, &model.Follow{}, &model.Bookmark{}); err != nil {
		panic(err)
	}

	// 初始化媒体上传客户端
	uploader, err := media.NewS3Uploader(context.Background(), config.GlobalConfig.S3)
	if err != nil {
		panic(err)
	}

	// 初始化 DAO 和 Service
	userDAO := dao.NewUserDAO(db)
	followDAO := dao.NewFollowDAO(db)
	postDAO := dao.NewPostDAO(db)
	userService := service.NewUserService(userDAO, followDAO, postDAO, uploader)
	userAPI := v1.NewUserAPI(userService)

	// 初始化路由
	r := gin.Default()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 注册自定义校验器
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("gender", myvalidator.IsGender); err != nil {
			panic(err)
		}
	}

	// 公共路由
	public := r.Group("/api/v1")
	{
		public.POST("/user/register", userAPI.Register)
		loginLimiter := middleware.LoginRateLimiter(config.RedisClient, 5, time.Minute)
		public.POST("/user/login", loginLimiter, userAPI.Login)
		public.POST("/user/logout", userAPI.Logout)
		public.GET("/user/:id/profile", userAPI.GetProfile)
		public.GET("/user/:id/followers", userAPI.GetFollowers)
		public.GET("/user/:id/following", userAPI.GetFollowing)
	}

	// 私有路由
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware())
	{
		private.POST("/user/profile/edit", userAPI.EditProfile)
		private.GET("/user/suggested", userAPI.GetSuggestedUsers)
		private.POST("/user/followorunfollow/:id", userAPI.FollowOrUnfollow)
	}

	// 启动服务
	if err := r.Run(config.GlobalConfig.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
