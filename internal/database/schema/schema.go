package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Casino Scoring Schema

-- 1. Settled game rounds (append-only)
CREATE TABLE IF NOT EXISTS game_results (
    id UUID PRIMARY KEY,
    player_id VARCHAR(100) NOT NULL,
    game VARCHAR(20) NOT NULL,
    bet_amount DOUBLE PRECISION NOT NULL CHECK (bet_amount > 0),
    payout DOUBLE PRECISION NOT NULL DEFAULT 0,
    won BOOLEAN NOT NULL DEFAULT FALSE,
    cheat_applied BOOLEAN NOT NULL DEFAULT FALSE,
    detail JSONB,
    played_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_game_results_game ON game_results (game);
CREATE INDEX IF NOT EXISTS idx_game_results_played_at ON game_results (played_at);
CREATE INDEX IF NOT EXISTS idx_game_results_player_game ON game_results (player_id, game);

-- 2. Best score per player and game (materialized from game_results)
CREATE TABLE IF NOT EXISTS player_scores (
    player_id VARCHAR(100) NOT NULL,
    game VARCHAR(20) NOT NULL,
    best_payout DOUBLE PRECISION NOT NULL DEFAULT 0,
    metadata JSONB,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (player_id, game)
);

CREATE INDEX IF NOT EXISTS idx_player_scores_game_best ON player_scores (game, best_payout DESC, updated_at DESC);
`
