package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/kadosh-sales/crm-api/internal/application/session"
)

// CanalCambios es el canal de NOTIFY que los triggers de la base usan para
// publicar cambios de registros.
const CanalCambios = "crm_cambios"

// Listener mantiene una conexión dedicada en LISTEN sobre el canal de cambios
// y mezcla cada evento en el estado en memoria. Si la conexión se cae,
// reconecta y recarga el estado completo (los eventos perdidos durante la
// desconexión no se pueden reponer de otra forma).
type Listener struct {
	pool  *pgxpool.Pool
	state *session.State
	log   zerolog.Logger
}

// NewListener construye el listener.
func NewListener(pool *pgxpool.Pool, state *session.State, log zerolog.Logger) *Listener {
	return &Listener{pool: pool, state: state, log: log}
}

// Run bloquea escuchando el canal hasta que el contexto se cancele.
// Pensado para correr en su propia goroutine desde main.
func (l *Listener) Run(ctx context.Context) {
	backoff := time.Second
	for {
		if ctx.Err() != nil {
			return
		}
		if err := l.listen(ctx); err != nil && ctx.Err() == nil {
			l.log.Error().Err(err).Dur("retry_in", backoff).Msg("listener desconectado")
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+CanalCambios); err != nil {
		return err
	}

	// Recarga completa después de (re)conectar: todo lo notificado antes de
	// este punto ya quedó cubierto por el Load.
	if err := l.state.Load(ctx); err != nil {
		return err
	}
	l.log.Info().Str("canal", CanalCambios).Msg("escuchando cambios de la base")

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}

		var ev session.Event
		if err := json.Unmarshal([]byte(notification.Payload), &ev); err != nil {
			l.log.Warn().Err(err).Str("payload", notification.Payload).Msg("payload de NOTIFY inválido, ignorado")
			continue
		}
		if err := l.state.Apply(ctx, ev); err != nil {
			l.log.Warn().Err(err).
				Str("tabla", ev.Tabla).
				Str("op", string(ev.Op)).
				Str("id", ev.ID).
				Msg("no se pudo aplicar el evento al estado")
		}
	}
}
