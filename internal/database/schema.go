package database

// schema creates the four tables and their indexes. Every statement is
// IF NOT EXISTS so provisioning is safe to run on each process start and
// never alters or drops existing data.
//
// Cascading deletes are intentionally NOT declared here: removing a customer
// together with its transactions and reminders is a ledger operation that
// must run as one explicit unit of work.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    business_name TEXT NOT NULL,
    owner_name TEXT NOT NULL,
    phone_number TEXT NOT NULL,
    whatsapp_number TEXT,
    language_code TEXT NOT NULL DEFAULT 'en',
    photo_url TEXT,
    business_category TEXT,
    address TEXT,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS customers (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    name TEXT NOT NULL,
    phone_number TEXT NOT NULL,
    whatsapp_number TEXT,
    address TEXT,
    photo_url TEXT,
    business_type TEXT,
    notes TEXT,
    balance INTEGER NOT NULL DEFAULT 0,
    last_transaction_at INTEGER,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id)
);

CREATE TABLE IF NOT EXISTS transactions (
    id TEXT PRIMARY KEY,
    customer_id TEXT NOT NULL,
    customer_name TEXT,
    amount INTEGER NOT NULL,
    type TEXT NOT NULL,
    payment_method TEXT,
    description TEXT,
    photo_url TEXT,
    status TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (customer_id) REFERENCES customers(id)
);

CREATE TABLE IF NOT EXISTS reminders (
    id TEXT PRIMARY KEY,
    customer_id TEXT NOT NULL,
    template_id INTEGER,
    message_text TEXT NOT NULL,
    sent_at INTEGER,
    scheduled_for INTEGER,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (customer_id) REFERENCES customers(id)
);

CREATE INDEX IF NOT EXISTS idx_customers_user_id ON customers(user_id);
CREATE INDEX IF NOT EXISTS idx_transactions_customer_id ON transactions(customer_id);
CREATE INDEX IF NOT EXISTS idx_transactions_created_at ON transactions(created_at);
CREATE INDEX IF NOT EXISTS idx_reminders_customer_id ON reminders(customer_id);
`
