package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/oilquip/site-api/internal/cms"
)

func New(logger *slog.Logger, manager *cms.Manager) *zenrpc.Server {

	rpcService := NewNewsService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("news", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "oilquip-site-api", nil))

	return rpcServer
}
