package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/walletty/wallet-server/internal/handlers/v1/account"
	"github.com/walletty/wallet-server/internal/handlers/v1/auth"
	"github.com/walletty/wallet-server/internal/handlers/v1/category"
	"github.com/walletty/wallet-server/internal/handlers/v1/statistics"
	"github.com/walletty/wallet-server/internal/handlers/v1/status"
	"github.com/walletty/wallet-server/internal/handlers/v1/transaction"
	"github.com/walletty/wallet-server/internal/logging"
	"github.com/walletty/wallet-server/internal/operator"
	"github.com/walletty/wallet-server/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()
	humaAPI := humago.New(mux, huma.DefaultConfig("wallet-server", "1.0.0"))
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))

	status.NewHandler().Register(humaAPI)

	auth.NewRegisterHandler(r.Operator).Register(humaAPI)
	auth.NewLoginHandler(r.Service.User).Register(humaAPI)

	account.NewListAccountsHandler(r.Service.Account).Register(humaAPI)
	account.NewCreateAccountHandler(r.Operator).Register(humaAPI)
	account.NewUpdateAccountHandler(r.Operator).Register(humaAPI)
	account.NewDeleteAccountHandler(r.Operator).Register(humaAPI)
	account.NewAccountSummaryHandler(r.Service.Account).Register(humaAPI)
	account.NewAdjustBalanceHandler(r.Operator).Register(humaAPI)

	category.NewListCategoriesHandler(r.Service.Category).Register(humaAPI)
	category.NewCreateCategoryHandler(r.Operator).Register(humaAPI)
	category.NewUpdateCategoryHandler(r.Operator).Register(humaAPI)
	category.NewDeleteCategoryHandler(r.Operator).Register(humaAPI)

	transaction.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewTransferHandler(r.Operator).Register(humaAPI)

	statistics.NewHandler(r.Service.Statistics).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
