package registry

import (
	"github.com/sifiratik/fidan/internal/content"
	"github.com/sifiratik/fidan/internal/pubsub"
)

// Service keys shared between the kernel and modules. Using typed keys
// prevents typos and type assertions at the call site.
const (
	ContentStoreKey Key[*content.Store]   = "content.store"
	PublisherKey    Key[pubsub.Publisher] = "pubsub.publisher"
)
