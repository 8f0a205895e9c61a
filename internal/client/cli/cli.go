// Package cli реализует команды клиента syncpad.
package cli

import (
	"context"
	"fmt"

	"github.com/ivolkov/syncpad/internal/client/auth"
	"github.com/ivolkov/syncpad/internal/client/conflictres"
	"github.com/ivolkov/syncpad/internal/client/deltasync"
	"github.com/ivolkov/syncpad/internal/client/iocli"
	"github.com/ivolkov/syncpad/internal/client/queue"
	"github.com/ivolkov/syncpad/pkg/api"
)

//go:generate moq -out serverapi_mock.go . ServerAPI

// ServerAPI часть API клиента, нужная командам напрямую
type ServerAPI interface {
	// SetToken устанавливает Bearer token для последующих запросов
	SetToken(token string)
	// GetEntity возвращает актуальное состояние сущности с сервера
	GetEntity(ctx context.Context, entityType, entityID string) (*api.EntityResponse, error)
}

// Cli объединяет сервисы клиента и терминальный ввод-вывод
type Cli struct {
	io          iocli.IO
	apiClient   ServerAPI
	authService *auth.Service
	queue       *queue.Manager
	conflicts   *deltasync.Service
	resolver    *conflictres.Resolver
}

// New создает Cli со всеми зависимостями
func New(
	io iocli.IO,
	apiClient ServerAPI,
	authService *auth.Service,
	queueManager *queue.Manager,
	conflicts *deltasync.Service,
	resolver *conflictres.Resolver,
) *Cli {
	return &Cli{
		io:          io,
		apiClient:   apiClient,
		authService: authService,
		queue:       queueManager,
		conflicts:   conflicts,
		resolver:    resolver,
	}
}

// PrintUsage выводит справку по командам
func PrintUsage() {
	fmt.Println("Syncpad Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  syncpad [OPTIONS] COMMAND [ARGS]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version            Show version information")
	fmt.Println("  --server URL         Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH            Path to local database (default: syncpad-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                                 Register new user")
	fmt.Println("  login                                    Login to server")
	fmt.Println("  logout                                   Logout and drop local session")
	fmt.Println("  status                                   Show session and queue status")
	fmt.Println("  add <action> <type> <id> [key=value...]  Queue a mutation (create|update|delete)")
	fmt.Println("  sync                                     Push queued mutations to server")
	fmt.Println("  retry <item-id|all>                      Requeue failed mutations")
	fmt.Println("  conflicts                                List unresolved conflicts")
	fmt.Println("  resolve <conflict-id> <strategy>         Resolve conflict (keep-local|keep-remote|cancel)")
	fmt.Println("  get <type> <id>                          Fetch entity state from server")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  syncpad register")
	fmt.Println("  syncpad login")
	fmt.Println("  syncpad add create project p-1 title=Alpha color=red")
	fmt.Println("  syncpad add -priority high -base 3 update project p-1 title=Beta")
	fmt.Println("  syncpad sync")
	fmt.Println("  syncpad conflicts")
	fmt.Println("  syncpad resolve 7f3c... keep-local")
	fmt.Println("  syncpad --server https://example.com get project p-1")
}
