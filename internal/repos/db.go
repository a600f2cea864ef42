package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed demo catalog if DB is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure the admin account exists (idempotent; safe to run every start)
	if err := seedAdmin(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Categories (bilingual names are both required)
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  nameen TEXT NOT NULL,
  nameso TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_nameen_nocase ON categories(LOWER(nameen));

-- Products (category NULL = uncategorized)
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  nameen TEXT NOT NULL,
  nameso TEXT NOT NULL,
  category TEXT NULL REFERENCES categories(id) ON DELETE SET NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  image TEXT,
  description TEXT,
  descriptionen TEXT,
  descriptionso TEXT,
  material TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_category   ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_nameen     ON products(LOWER(nameen));
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);

-- Admin accounts & cookie sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('USER','ADMIN')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo categories/products")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO categories(id,nameen,nameso) VALUES
	  ('khamiis','Khamiis','Khamiis'),
	  ('shaadh','Shaadh','Shaadh'),
	  ('surwaalo','Surwaalo','Surwaalo'),
	  ('cadaro','Cadaro','Cadaro'),
	  ('sacado','Sacado','Sacado'),
	  ('suits','Suits','Suudhyo'),
	  ('jackets','Jackets','Jaakado'),
	  ('garaman','Garaman','Garaman'),
	  ('macawiso','Macawiso','Macawiso'),
	  ('sandals','Sandals','Kabooyin')`)

	tx.MustExec(`INSERT INTO products(id,name,nameen,nameso,category,price,image,description,descriptionen,descriptionso,material) VALUES
	  ('p-khamiis-premium','Premium Khamiis','Premium Khamiis','Khamiis Tayada Sare','khamiis',2500,NULL,
	   'Elegant traditional Khamiis with intricate embroidery',
	   'Elegant traditional Khamiis with intricate embroidery and premium cotton fabric. Perfect for special occasions and daily wear.',
	   'Khamiis dhaqameed oo qurux badan oo leh dhar-tolinta ee faahfaahin ah iyo dhar-cadka tayada sare.',
	   'Premium Cotton'),
	  ('p-suit-classic','Classic Suit','Classic Suit','Suudh Caadi ah','suits',4500,NULL,
	   'Professional business suit for modern gentlemen',
	   'Professional business suit tailored for the modern gentleman. Made with high-quality wool blend.',
	   'Suudh ganacsiga xirfadeed loo sameeyay ninka casriga ah.',
	   'Wool Blend'),
	  ('p-macawis-trad','Traditional Macawis','Traditional Macawis','Macawis Dhaqameed','macawiso',800,NULL,
	   'Comfortable traditional Macawis in various colors',
	   'Comfortable traditional Macawis made from breathable cotton. Available in various colors and patterns.',
	   'Macawis dhaqameed oo raaxo badan oo laga sameeyay dhar-cadka neefta sii daaya.',
	   'Cotton'),
	  ('p-sandals-leather','Leather Sandals','Leather Sandals','Kabooyin Hargaha','sandals',1200,NULL,
	   'Handcrafted leather sandals for comfort and style',
	   'Handcrafted genuine leather sandals designed for maximum comfort and timeless style.',
	   'Kabooyin haraga dhabta ah oo gacan lagu sameeyay.',
	   'Genuine Leather'),
	  ('p-cadaro-elegant','Elegant Cadaro','Elegant Cadaro','Cadaro Qurux badan','cadaro',1800,NULL,
	   'Beautiful traditional head covering with intricate patterns',
	   'Beautiful traditional head covering with intricate embroidered patterns. Made from fine silk.',
	   'Madax-dabool dhaqameed oo qurux badan oo leh qaabab faahfaahin ah.',
	   'Silk'),
	  ('p-jacket-modern','Modern Jacket','Modern Jacket','Jaakad Casri ah','jackets',3200,NULL,
	   'Stylish jacket perfect for any weather',
	   'Stylish modern jacket with weather-resistant fabric. Features multiple pockets and a comfortable fit.',
	   'Jaakad casri ah oo qurux leh oo leh dhar ka-hor-imaanaya cimilada.',
	   NULL)`)

	return tx.Commit()
}

// seedAdmin ensures the admin account exists (idempotent).
func seedAdmin(db *sqlx.DB) error {
	h, err := bcrypt.GenerateFromPassword([]byte("Carwo-Adm1n!"), 12)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO users(id,email,name,password_hash,role)
		VALUES('u-admin','admin@carwo.test','Admin',?,'ADMIN')
		ON CONFLICT(email) DO NOTHING
	`, string(h))
	return err
}
