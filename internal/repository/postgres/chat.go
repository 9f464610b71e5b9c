package postgres

import (
	"context"
)

func (s *Storage) SaveChatMessage(ctx context.Context, sessionID, role, content string) error {
	const query = `
		INSERT INTO chat_messages (session_id, role, content)
		VALUES ($1, $2, $3);
	`

	_, err := s.pool.Exec(ctx, query, sessionID, role, content)
	return err
}
