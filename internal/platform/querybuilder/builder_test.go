package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectToSQL(t *testing.T) {
	t.Run("builds where, group by, and order by", func(t *testing.T) {
		query, args, err := Select("public_id", "name").From("players").
			Where(Eq("public_id", "p1")).
			GroupBy("public_id", "name").
			OrderBy("name").
			Limit(5).
			ToSQL()
		require.NoError(t, err)
		require.Equal(t, "SELECT public_id, name FROM players WHERE public_id = $1 GROUP BY public_id, name ORDER BY name LIMIT 5", query)
		require.Equal(t, []any{"p1"}, args)
	})

	t.Run("numbers multiple conditions sequentially", func(t *testing.T) {
		query, args, err := Select("id").From("pass_events").
			Where(Eq("session_public_id", "s1"), Eq("player_public_id", "p1")).
			ToSQL()
		require.NoError(t, err)
		require.Equal(t, "SELECT id FROM pass_events WHERE session_public_id = $1 AND player_public_id = $2", query)
		require.Equal(t, []any{"s1", "p1"}, args)
	})

	t.Run("rewrites expr markers", func(t *testing.T) {
		query, args, err := Select("id").From("pass_events").
			Where(Eq("session_public_id", "s1"), Expr("rating >= ?", 2)).
			ToSQL()
		require.NoError(t, err)
		require.Equal(t, "SELECT id FROM pass_events WHERE session_public_id = $1 AND rating >= $2", query)
		require.Equal(t, []any{"s1", 2}, args)
	})

	t.Run("rejects missing table", func(t *testing.T) {
		_, _, err := Select("id").ToSQL()
		require.Error(t, err)
	})
}

func TestInsertToSQL(t *testing.T) {
	query, args, err := InsertInto("players").
		Columns("public_id", "name", "jersey_number").
		Values("p1", "Ana", 7).
		Suffix("RETURNING id").
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "INSERT INTO players (public_id, name, jersey_number) VALUES ($1, $2, $3) RETURNING id", query)
	require.Equal(t, []any{"p1", "Ana", 7}, args)

	_, _, err = InsertInto("players").Columns("a", "b").Values("only-one").ToSQL()
	require.Error(t, err)
}

func TestUpdateToSQL(t *testing.T) {
	query, args, err := Update("players").
		Set("name", "Ana").
		Set("jersey_number", 7).
		Where(Eq("public_id", "p1")).
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "UPDATE players SET name = $1, jersey_number = $2 WHERE public_id = $3", query)
	require.Equal(t, []any{"Ana", 7, "p1"}, args)
}

func TestDeleteToSQL(t *testing.T) {
	query, args, err := DeleteFrom("players").Where(Eq("public_id", "p1")).ToSQL()
	require.NoError(t, err)
	require.Equal(t, "DELETE FROM players WHERE public_id = $1", query)
	require.Equal(t, []any{"p1"}, args)

	_, _, err = DeleteFrom("players").ToSQL()
	require.Error(t, err)
}
