// Package cache implementa um cache em memória com validade por TTL e limite de entradas (LRU).
package cache

import (
	"container/list"
	"sync"
	"time"
)

const (
	// DefaultTTL é a janela de validade padrão de uma entrada
	DefaultTTL = 5 * time.Minute
	// DefaultMaxEntries limita o número de fingerprints guardados ao mesmo tempo
	DefaultMaxEntries = 512
)

// Entry é o valor guardado para um fingerprint
type Entry struct {
	Key      string
	Data     any
	StoredAt time.Time
}

// Cache guarda resultados por fingerprint. Entradas expiradas são tratadas como ausentes
// e removidas apenas quando acessadas (expiração preguiçosa).
type Cache struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	now        func() time.Time

	entries map[string]*list.Element
	// order mantém a ordem de uso: frente = mais recente, fundo = candidato a despejo
	order *list.List
}

// Option configura um Cache
type Option func(c *Cache)

// WithTTL define a janela de validade das entradas
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithMaxEntries define o número máximo de entradas antes do despejo LRU
func WithMaxEntries(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// WithClock substitui o relógio usado para calcular a idade das entradas
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// New cria um cache vazio
func New(opts ...Option) *Cache {
	c := &Cache{
		ttl:        DefaultTTL,
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
		entries:    make(map[string]*list.Element),
		order:      list.New(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get retorna o valor guardado para a chave enquanto now - storedAt < TTL
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	ent := el.Value.(*Entry)
	if c.now().Sub(ent.StoredAt) >= c.ttl {
		c.removeElement(el)
		return nil, false
	}

	c.order.MoveToFront(el)
	return ent.Data, true
}

// Put sobrescreve qualquer entrada anterior da chave e reinicia o storedAt
func (c *Cache) Put(key string, data any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()

	if el, ok := c.entries[key]; ok {
		ent := el.Value.(*Entry)
		ent.Data = data
		ent.StoredAt = now
		c.order.MoveToFront(el)
		return
	}

	el := c.order.PushFront(&Entry{Key: key, Data: data, StoredAt: now})
	c.entries[key] = el

	for c.order.Len() > c.maxEntries {
		c.removeElement(c.order.Back())
	}
}

// Invalidate remove a chave. Remover uma chave inexistente não tem efeito.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.removeElement(el)
	}
}

// Clear remove todas as entradas
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*list.Element)
	c.order.Init()
}

// Len retorna o número de entradas guardadas, incluindo as expiradas ainda não acessadas
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// TTL retorna a janela de validade configurada
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

func (c *Cache) removeElement(el *list.Element) {
	ent := c.order.Remove(el).(*Entry)
	delete(c.entries, ent.Key)
}
