package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gas-station-dashboard/internal/domain"
)

var ErrInvalidInterval = errors.New("intervalo de polling deve ser positivo")

// RealtimeSource fornece o dado combinado de mercado e previsão de cada ciclo
type RealtimeSource interface {
	RealtimeSnapshot(ctx context.Context) domain.RealtimeUpdate
}

// Callback recebe o resultado de cada ciclo. ctx é cancelado quando o polling é encerrado e deve
// ser repassado a Stop quando o próprio callback encerra o polling.
type Callback func(ctx context.Context, update domain.RealtimeUpdate)

type deliveryKey struct{}

// Poller executa ciclos periódicos de leitura e entrega o resultado a um callback.
// Nunca há mais de um ciclo em andamento. Depois que Stop retorna nenhum callback está em execução
// nem será iniciado, exceto o próprio callback que chamou Stop.
type Poller struct {
	source RealtimeSource

	mu           sync.Mutex
	scheduler    *gocron.Scheduler
	cancel       context.CancelFunc
	polling      bool
	generation   uint64
	cycleRunning bool
	cycleDone    chan struct{}
	interval     time.Duration
	latest       *domain.RealtimeUpdate
	lastCycleAt  time.Time
}

func NewPoller(source RealtimeSource) *Poller {
	return &Poller{source: source}
}

// Start agenda um ciclo a cada interval. O primeiro ciclo ocorre após o primeiro intervalo.
// Um polling anterior é encerrado antes, com as mesmas regras de Stop.
func (p *Poller) Start(ctx context.Context, interval time.Duration, callback Callback) error {
	if interval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, interval)
	}

	if err := p.Stop(ctx); err != nil {
		return err
	}

	cycleCtx, cancel := context.WithCancel(context.Background())
	scheduler := gocron.NewScheduler(time.Local)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.generation++
	gen := p.generation

	_, err := scheduler.Every(interval).WaitForSchedule().SingletonMode().Do(p.cycle(cycleCtx, gen, callback))
	if err != nil {
		cancel()
		return fmt.Errorf("erro ao agendar o polling: %w", err)
	}

	p.scheduler = scheduler
	p.cancel = cancel
	p.polling = true
	p.interval = interval

	scheduler.StartAsync()

	logrus.WithField("interval", interval.String()).Info("Polling de mercado e previsões iniciado")

	return nil
}

// cycle só entrega o resultado se o polling da geração gen continuar ativo depois da leitura.
// cycleDone fica aberto até o callback terminar, e é por ele que Stop espera.
func (p *Poller) cycle(ctx context.Context, gen uint64, callback Callback) func() {
	return func() {
		p.mu.Lock()
		if !p.polling || p.generation != gen || p.cycleRunning {
			p.mu.Unlock()
			return
		}
		p.cycleRunning = true
		done := make(chan struct{})
		p.cycleDone = done
		p.mu.Unlock()

		defer func() {
			p.mu.Lock()
			p.cycleRunning = false
			p.cycleDone = nil
			p.mu.Unlock()
			close(done)
		}()

		update := p.source.RealtimeSnapshot(ctx)

		p.mu.Lock()
		if !p.polling || p.generation != gen {
			p.mu.Unlock()
			return
		}
		p.latest = &update
		p.lastCycleAt = update.Timestamp
		p.mu.Unlock()

		if callback != nil {
			callback(context.WithValue(ctx, deliveryKey{}, done), update)
		}
	}
}

// Stop encerra o polling e espera o ciclo em andamento terminar, ou ctx expirar.
// É idempotente. Dentro do callback deve receber o ctx do callback, e nesse caso não espera.
func (p *Poller) Stop(ctx context.Context) error {
	p.mu.Lock()
	done := p.cycleDone
	wasPolling := p.polling

	var (
		scheduler *gocron.Scheduler
		cancel    context.CancelFunc
	)
	if wasPolling {
		p.polling = false
		p.generation++
		scheduler = p.scheduler
		cancel = p.cancel
		p.scheduler = nil
		p.cancel = nil
	}
	p.mu.Unlock()

	if wasPolling {
		cancel()

		// O gocron espera os jobs em execução terminarem, e o ciclo em andamento pode ser quem chamou Stop
		if done != nil {
			go scheduler.Stop()
		} else {
			scheduler.Stop()
		}

		logrus.Info("Polling de mercado e previsões encerrado")
	}

	if done == nil || insideDelivery(ctx, done) {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func insideDelivery(ctx context.Context, done chan struct{}) bool {
	current, ok := ctx.Value(deliveryKey{}).(chan struct{})
	return ok && current == done
}

func (p *Poller) IsPolling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.polling
}

// Latest devolve o resultado do último ciclo entregue
func (p *Poller) Latest() (domain.RealtimeUpdate, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.latest == nil {
		return domain.RealtimeUpdate{}, false
	}
	return *p.latest, true
}

func (p *Poller) GetStatus() map[string]any {
	p.mu.Lock()
	defer p.mu.Unlock()

	return map[string]any{
		"polling_enabled":       p.polling,
		"polling_interval":      p.interval.String(),
		"polling_cycle_running": p.cycleRunning,
		"polling_last_cycle_at": p.lastCycleAt,
	}
}
