package cli

import (
	"fmt"

	"github.com/iudanet/gophshop/internal/client/auth"
	"github.com/iudanet/gophshop/internal/client/cart"
	"github.com/iudanet/gophshop/internal/client/iocli"
	"github.com/iudanet/gophshop/internal/client/sync"
	"github.com/iudanet/gophshop/internal/client/wishlist"
)

// Cli связывает консольные команды с сервисами клиента
type Cli struct {
	io              iocli.IO
	authService     *auth.Service
	cartService     cart.Service
	wishlistService wishlist.Service
	syncService     sync.Service
}

func New(
	io iocli.IO,
	authService *auth.Service,
	cartService cart.Service,
	wishlistService wishlist.Service,
	syncService sync.Service,
) *Cli {
	return &Cli{
		io:              io,
		authService:     authService,
		cartService:     cartService,
		wishlistService: wishlistService,
		syncService:     syncService,
	}
}

func PrintUsage() {
	fmt.Println("GophShop Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  gophshop [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH        Path to local database (default: gophshop-client.db)")
	fmt.Println("  --probe URL      Connectivity probe URL")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                        Register new shopper")
	fmt.Println("  login                           Login to server")
	fmt.Println("  logout                          Logout (delete local session)")
	fmt.Println("  status                          Show session and pending sync status")
	fmt.Println("  cart add                        Add a product to the cart")
	fmt.Println("  cart list                       Show the local cart")
	fmt.Println("  cart update <id> <quantity>     Change item quantity (0 removes)")
	fmt.Println("  cart remove <id>                Remove an item from the cart")
	fmt.Println("  cart clear                      Empty the local cart")
	fmt.Println("  wish add                        Add a product to the wishlist")
	fmt.Println("  wish list                       Show the local wishlist")
	fmt.Println("  wish remove <id>                Remove an item from the wishlist")
	fmt.Println("  sync                            Push pending operations to the server")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  gophshop register")
	fmt.Println("  gophshop login")
	fmt.Println("  gophshop cart add")
	fmt.Println("  gophshop cart update 7d64cbde-4a3f-4f0a-9c1e-0a2b3c4d5e6f 3")
	fmt.Println("  gophshop sync")
	fmt.Println("  gophshop --server https://shop.example.com status")
}
