package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS grants (
    award_id             TEXT PRIMARY KEY,
    title                TEXT NOT NULL,
    institution          TEXT,
    state                TEXT,
    state_name           TEXT,
    directorate          TEXT,
    effective_date       TEXT,
    expiration_date      TEXT,
    amount               REAL NOT NULL,
    export_year          INTEGER NOT NULL,
    terminated           INTEGER NOT NULL DEFAULT 0,
    alignment_2020       TEXT,
    alignment_2024       TEXT
);

CREATE TABLE IF NOT EXISTS file_tracker (
    file_path            TEXT PRIMARY KEY,
    mtime_ns             INTEGER NOT NULL,
    size_bytes           INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_grants_state ON grants(state);
CREATE INDEX IF NOT EXISTS idx_grants_export_year ON grants(export_year);
`
