package sqlite

// schema contains the database schema DDL.
const schema = `
-- Scene library
CREATE TABLE IF NOT EXISTS scenes (
    name TEXT PRIMARY KEY,
    config TEXT NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Rendered frames, one per scene
CREATE TABLE IF NOT EXISTS frame_cache (
    scene TEXT PRIMARY KEY,
    width INTEGER NOT NULL,
    height INTEGER NOT NULL,
    pixels BLOB NOT NULL,
    generated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Render log
CREATE TABLE IF NOT EXISTS renders (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    scene TEXT NOT NULL,
    target TEXT NOT NULL,
    timestamp INTEGER NOT NULL, -- unix milliseconds
    duration_ms INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_renders_time ON renders(timestamp);

-- Settings
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Displays
CREATE TABLE IF NOT EXISTS devices (
    id TEXT PRIMARY KEY,
    ip TEXT NOT NULL,
    name TEXT,
    type TEXT DEFAULT 'pixoo64',
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    last_seen DATETIME
);
`
