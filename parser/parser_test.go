package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridoystarlord/crafto/schema"
)

func TestFieldsBasic(t *testing.T) {
	cols, rels, err := Fields("title:string,body:text,is_active:boolean")
	require.NoError(t, err)
	require.Len(t, cols, 3)
	assert.Empty(t, rels)

	assert.Equal(t, "title", cols[0].Name)
	assert.Equal(t, schema.TypeString, cols[0].Type)
	assert.Equal(t, "body", cols[1].Name)
	assert.Equal(t, schema.TypeText, cols[1].Type)
	assert.Equal(t, "is_active", cols[2].Name)
	assert.Equal(t, schema.TypeBoolean, cols[2].Type)

	for _, col := range cols {
		assert.False(t, col.Nullable)
		assert.False(t, col.Unique)
		assert.False(t, col.ForeignKey)
	}
}

func TestFieldsDefaultsToString(t *testing.T) {
	cols, _, err := Fields("title")
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Equal(t, schema.TypeString, cols[0].Type)
	assert.Equal(t, schema.DefaultStringLength, cols[0].Length)

	cols, _, err = Fields("title,body:text,slug")
	require.NoError(t, err)
	require.Len(t, cols, 3)
	assert.Equal(t, schema.TypeString, cols[0].Type)
	assert.Equal(t, schema.TypeText, cols[1].Type)
	assert.Equal(t, schema.TypeString, cols[2].Type)
}

func TestFieldsModifiers(t *testing.T) {
	cols, _, err := Fields("email:string:unique,bio:text:nullable,code:string:10")
	require.NoError(t, err)
	require.Len(t, cols, 3)

	assert.True(t, cols[0].Unique)
	assert.True(t, cols[1].Nullable)
	assert.Equal(t, 10, cols[2].Length)
}

func TestFieldsUnrecognizedModifierIgnored(t *testing.T) {
	cols, _, err := Fields("title:string:bogus")
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.False(t, cols[0].Nullable)
	assert.False(t, cols[0].Unique)
	assert.Equal(t, schema.DefaultStringLength, cols[0].Length)
}

func TestFieldsForeignKey(t *testing.T) {
	cols, rels, err := Fields("user_id:foreignId")
	require.NoError(t, err)
	require.Len(t, cols, 1)
	require.Len(t, rels, 1)

	assert.True(t, cols[0].ForeignKey)
	assert.True(t, cols[0].Unsigned)
	assert.Equal(t, schema.TypeBigInteger, cols[0].Type)

	assert.Equal(t, schema.BelongsTo, rels[0].Kind)
	assert.Equal(t, "User", rels[0].RelatedModel)
	assert.Equal(t, "user", rels[0].Accessor)
	assert.Equal(t, "user_id", rels[0].ForeignKey)
}

func TestFieldsForeignKeyBySuffix(t *testing.T) {
	cols, rels, err := Fields("category_id:int")
	require.NoError(t, err)
	assert.True(t, cols[0].ForeignKey)
	require.Len(t, rels, 1)
	assert.Equal(t, "Category", rels[0].RelatedModel)
}

func TestFieldsAliases(t *testing.T) {
	cols, _, err := Fields("a:str,b:int,c:bool,d:txt,e:double")
	require.NoError(t, err)
	require.Len(t, cols, 5)
	assert.Equal(t, schema.TypeString, cols[0].Type)
	assert.Equal(t, schema.TypeInteger, cols[1].Type)
	assert.Equal(t, schema.TypeBoolean, cols[2].Type)
	assert.Equal(t, schema.TypeText, cols[3].Type)
	assert.Equal(t, schema.TypeFloat, cols[4].Type)
}

func TestFieldsUnknownTypePassesThrough(t *testing.T) {
	cols, _, err := Fields("location:point")
	require.NoError(t, err)
	assert.Equal(t, schema.SemanticType("point"), cols[0].Type)
}

func TestFieldsWhitespaceTrimmed(t *testing.T) {
	cols, _, err := Fields(" title : string , body : text ")
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, "title", cols[0].Name)
	assert.Equal(t, "body", cols[1].Name)
}

func TestFieldsEmptyName(t *testing.T) {
	_, _, err := Fields("title:string,:text")
	require.Error(t, err)
	var malformed *MalformedFieldSpecError
	require.ErrorAs(t, err, &malformed)
}

func TestFieldsEmptySpec(t *testing.T) {
	cols, rels, err := Fields("  ")
	require.NoError(t, err)
	assert.Nil(t, cols)
	assert.Nil(t, rels)
}
