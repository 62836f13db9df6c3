package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin"

	"github.com/egaotan/arbitrage-bot/config"
	"github.com/egaotan/arbitrage-bot/dingsdk"
	"github.com/egaotan/arbitrage-bot/engine"
	"github.com/egaotan/arbitrage-bot/ledger"
	"github.com/egaotan/arbitrage-bot/lending"
	"github.com/egaotan/arbitrage-bot/networkdetect"
	"github.com/egaotan/arbitrage-bot/store"
	"github.com/egaotan/arbitrage-bot/utils"
	"github.com/egaotan/arbitrage-bot/venue"
)

// Backend is the storage the app wires into the engine: state records,
// the audit trail, and the query side of both.
type Backend interface {
	engine.StateStore
	Emit(event *engine.Event)
	GetEvents(authority solana.PublicKey) ([]*store.EventRecord, error)
	Start()
	Stop()
}

type multiEmitter struct {
	emitters []engine.Emitter
}

func (m *multiEmitter) Emit(event *engine.Event) {
	for _, emitter := range m.emitters {
		emitter.Emit(event)
	}
}

type App struct {
	ctx        context.Context
	log        *log.Logger
	cfg        *config.Config
	backend    Backend
	engine     *engine.Engine
	wallet     *ledger.Ledger
	pool       *lending.FlashPool
	notify     *Notify
	nd         *networkdetect.NetworkDetector
	httpServer *http.Server
}

func NewApp(ctx context.Context, cfg *config.Config) *App {
	app := &App{
		ctx: ctx,
		cfg: cfg,
		log: utils.NewLog(config.LogPath, config.AppLog),
	}
	//
	var backend Backend
	if cfg.Simulate {
		backend = store.NewMemoryStore()
	} else {
		storeLog := utils.NewLog(config.LogPath, config.StoreLog)
		backend = store.NewStore(ctx, storeLog, cfg.DBUrl, cfg.DBScheme, cfg.DBUser, cfg.DBPasswd)
	}
	app.backend = backend
	//
	registry := venue.NewRegistry()
	for _, v := range cfg.Venues {
		registry.Register(venue.NewAmmPool(v.Id, v.Name, v.TokenA, v.TokenB, v.ReserveA, v.ReserveB))
	}
	app.pool = lending.NewFlashPool(cfg.LendingReserve)
	app.wallet = ledger.NewLedger()
	//
	dsdk := dingsdk.NewDingSdk(cfg.DingUrl)
	app.notify = NewNotify(ctx, dsdk, cfg.SettleDecimals)
	if cfg.NetStatus {
		app.nd = networkdetect.NewNetworkDetector(ctx, cfg.Venues, dsdk)
	}
	//
	emitter := &multiEmitter{emitters: []engine.Emitter{backend, app.notify}}
	engineLog := utils.NewLog(config.LogPath, config.EngineLog)
	app.engine = engine.NewEngine(engineLog, backend, registry, app.pool, app.wallet,
		emitter, &engine.SystemClock{}, cfg.BotWallet, cfg.SettleToken)
	return app
}

func (app *App) Service() {
	app.Start()
	app.StartRPC()
	<-app.ctx.Done()
	app.StopRPC()
	app.Stop()
}

func (app *App) Start() {
	app.backend.Start()
	app.notify.Start()
	if app.nd != nil {
		app.nd.Start()
	}
	err := app.engine.Initialize(app.cfg.Authority, app.cfg.MinInterval)
	if err != nil && !errors.Is(err, engine.ErrAlreadyInitialized) {
		panic(err)
	}
	app.log.Printf("arbitrage bot has started......")
}

func (app *App) Stop() {
	if app.nd != nil {
		app.nd.Stop()
	}
	app.backend.Stop()
	app.log.Printf("arbitrage bot has stopped......")
}

func (app *App) StartRPC() {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	g := router.Group("/api")
	g.POST("/execute", app.executeArbitrage)
	g.POST("/flashloan", app.flashLoanArbitrage)
	g.POST("/pause", app.pause)
	g.POST("/resume", app.resume)
	g.POST("/config", app.updateConfig)
	g.POST("/withdraw", app.withdrawProfits)
	g.GET("/state", app.getState)
	g.GET("/events", app.getEvents)
	app.httpServer = &http.Server{
		Addr:    app.cfg.Listen,
		Handler: router,
	}
	app.log.Printf("start rpc server......")
	go func() {
		if err := app.httpServer.ListenAndServe(); err != nil {
			app.log.Printf("ListenAndServe: %s", err.Error())
		}
	}()
}

func (app *App) StopRPC() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.httpServer.Shutdown(ctx); err != nil {
		panic(err)
	}
	app.log.Printf("rpc server has stopped......")
}

func (app *App) executeArbitrage(c *gin.Context) {
	request := &ExecuteRequest{}
	if err := c.BindJSON(request); err != nil {
		c.JSON(400, err.Error())
		return
	}
	caller, err := solana.PublicKeyFromBase58(request.Caller)
	if err != nil {
		c.JSON(400, err.Error())
		return
	}
	routes, err := parseRoutes(request.Routes)
	if err != nil {
		c.JSON(400, err.Error())
		return
	}
	profit, err := app.engine.ExecuteArbitrage(caller, app.cfg.Authority, routes, request.MinProfit)
	if err != nil {
		c.JSON(500, err.Error())
		return
	}
	c.JSON(200, &ExecuteResponse{
		Profit:   profit,
		ProfitUi: ledger.AmountUi(profit, app.cfg.SettleDecimals).StringFixed(app.cfg.SettleDecimals),
	})
}

func (app *App) flashLoanArbitrage(c *gin.Context) {
	request := &FlashLoanRequest{}
	if err := c.BindJSON(request); err != nil {
		c.JSON(400, err.Error())
		return
	}
	caller, err := solana.PublicKeyFromBase58(request.Caller)
	if err != nil {
		c.JSON(400, err.Error())
		return
	}
	routes, err := parseRoutes(request.Routes)
	if err != nil {
		c.JSON(400, err.Error())
		return
	}
	profit, err := app.engine.FlashLoanArbitrage(caller, app.cfg.Authority, request.LoanAmount, routes, request.ExpectedProfit)
	if err != nil {
		c.JSON(500, err.Error())
		return
	}
	c.JSON(200, &ExecuteResponse{
		Profit:   profit,
		ProfitUi: ledger.AmountUi(profit, app.cfg.SettleDecimals).StringFixed(app.cfg.SettleDecimals),
	})
}

func (app *App) pause(c *gin.Context) {
	request := &AdminRequest{}
	if err := c.BindJSON(request); err != nil {
		c.JSON(400, err.Error())
		return
	}
	caller, err := solana.PublicKeyFromBase58(request.Caller)
	if err != nil {
		c.JSON(400, err.Error())
		return
	}
	if err := app.engine.Pause(caller, app.cfg.Authority); err != nil {
		c.JSON(500, err.Error())
		return
	}
	c.JSON(200, "ok")
}

func (app *App) resume(c *gin.Context) {
	request := &AdminRequest{}
	if err := c.BindJSON(request); err != nil {
		c.JSON(400, err.Error())
		return
	}
	caller, err := solana.PublicKeyFromBase58(request.Caller)
	if err != nil {
		c.JSON(400, err.Error())
		return
	}
	if err := app.engine.Resume(caller, app.cfg.Authority); err != nil {
		c.JSON(500, err.Error())
		return
	}
	c.JSON(200, "ok")
}

func (app *App) updateConfig(c *gin.Context) {
	request := &ConfigRequest{}
	if err := c.BindJSON(request); err != nil {
		c.JSON(400, err.Error())
		return
	}
	caller, err := solana.PublicKeyFromBase58(request.Caller)
	if err != nil {
		c.JSON(400, err.Error())
		return
	}
	if err := app.engine.UpdateConfig(caller, app.cfg.Authority, request.MinInterval); err != nil {
		c.JSON(500, err.Error())
		return
	}
	c.JSON(200, "ok")
}

func (app *App) withdrawProfits(c *gin.Context) {
	request := &WithdrawRequest{}
	if err := c.BindJSON(request); err != nil {
		c.JSON(400, err.Error())
		return
	}
	caller, err := solana.PublicKeyFromBase58(request.Caller)
	if err != nil {
		c.JSON(400, err.Error())
		return
	}
	if err := app.engine.WithdrawProfits(caller, app.cfg.Authority, request.Amount); err != nil {
		c.JSON(500, err.Error())
		return
	}
	c.JSON(200, "ok")
}

func (app *App) getState(c *gin.Context) {
	state, err := app.engine.State(app.cfg.Authority)
	if err != nil {
		c.JSON(500, err.Error())
		return
	}
	c.JSON(200, buildStateView(state, app.cfg.SettleDecimals))
}

func (app *App) getEvents(c *gin.Context) {
	records, err := app.backend.GetEvents(app.cfg.Authority)
	if err != nil {
		c.JSON(500, err.Error())
		return
	}
	c.JSON(200, buildEventViews(records, app.cfg.SettleDecimals))
}
