package main

import (
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/config"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/events"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/handler"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/infra/db"
	infraRepo "github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/infra/repository"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/logging"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/payment"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/pincode"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/server"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/shipping"
	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/usecase"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
)

func main() {
	//.envは無くても起動できる（本番は環境変数直指定）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logging.Init("storefront-api", cfg.LogFile)

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Color{},
		&model.Size{},
		&model.SizeStock{},
		&model.Cart{},
		&model.CartItem{},
		&model.Address{},
		&model.Order{},
		&model.OrderItem{},
		&model.OrderStatusHistory{},
		&model.DeliveryZone{},
		&model.ZoneRegion{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	tx := infraRepo.NewTxManagerGorm(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	variantRepo := infraRepo.NewVariantGormRepository(gormDB)
	stockRepo := infraRepo.NewSizeStockGormRepository(gormDB)
	zoneRepo := infraRepo.NewZoneGormRepository(gormDB)

	//pincode解決の3段チェーン
	resolver := pincode.NewResolver(
		logging.New("pincode"),
		pincode.NewCacheStrategy(pincode.DefaultCache()),
		pincode.NewRemoteStrategy(cfg.PostalEndpoints, cfg.PostalTimeout),
		pincode.NewPrefixStrategy(pincode.DefaultDistrictPrefixes(), pincode.DefaultStatePrefixes()),
	)

	zones := shipping.NewService(zoneRepo)
	engine := usecase.NewStockReservation(logging.New("stock"))
	gateway := payment.NewMockGateway(cfg.PaymentFailureRate)

	//イベント発行。ブローカー未設定ならnoop。
	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.RabbitURL != "" {
		conn, err := amqp.Dial(cfg.RabbitURL)
		if err != nil {
			panic(err)
		}
		ch, err := conn.Channel()
		if err != nil {
			panic(err)
		}
		publisher, err = events.NewRabbitPublisher(ch, cfg.RabbitExchange)
		if err != nil {
			panic(err)
		}
	}

	//usecase
	checkoutUC := usecase.NewCheckoutUsecase(
		tx, resolver, zones, engine, gateway, publisher,
		orderRepo, cartRepo, stockRepo,
		cfg.FreeShippingThreshold,
		logging.New("checkout"),
	)
	cartUC := usecase.NewCartUsecase(
		cartRepo, cartItemRepo, productRepo, variantRepo, stockRepo,
		resolver, zones, cfg.FreeShippingThreshold,
	)
	orderQueryUC := usecase.NewOrderQueryUsecase(tx)
	statusUC := usecase.NewOrderStatusUsecase(tx, publisher, logging.New("fulfillment"))

	//handler
	h := server.Handlers{
		Checkout: handler.NewCheckoutHandler(checkoutUC),
		Orders:   handler.NewOrderHandler(orderQueryUC),
		Cart:     handler.NewCartHandler(cartUC),
		Pincode:  handler.NewPincodeHandler(resolver),
		Admin:    handler.NewAdminOrderHandler(statusUC, zoneRepo),
	}

	e := server.New(cfg, h)
	log.Info("starting server", "port", cfg.Port)
	if err := server.Start(e, cfg.Port); err != nil {
		panic(err)
	}
}
