package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS income_records (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    amount      REAL NOT NULL CHECK (amount >= 0),
    category    TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    date        TEXT NOT NULL,
    day         TEXT NOT NULL,
    created_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_income_date ON income_records(date);
CREATE INDEX IF NOT EXISTS idx_income_day ON income_records(day);
CREATE INDEX IF NOT EXISTS idx_income_category ON income_records(category);

CREATE TABLE IF NOT EXISTS app_settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`
