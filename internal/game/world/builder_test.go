package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcurran/fable/internal/storytree"
)

const twoRoomStory = `
<world>
  <title>The Hollow Keep</title>
  <room>
    <name>Entrance</name>
    <description>A draughty stone archway.</description>
    <id>1</id>
    <inventory>
      <object>
        <name>lantern</name>
        <description>A dented brass lantern.</description>
        <id>10</id>
      </object>
      <object>
        <name>vault key</name>
        <description>Heavy and cold.</description>
        <id>11</id>
        <unlocks>2</unlocks>
      </object>
    </inventory>
    <connections>
      <id>2</id>
    </connections>
    <entity>
      <name>Warden</name>
      <inventory>
        <object>
          <name>ring</name>
          <description>A plain iron ring.</description>
          <id>12</id>
        </object>
      </inventory>
      <stats>
        <hp>20</hp>
        <strength>7</strength>
      </stats>
    </entity>
  </room>
  <room>
    <name>Vault</name>
    <description>Iron-bound and silent.</description>
    <id>2</id>
  </room>
</world>
`

// buildStory parses src and runs only the build phase, leaving the
// connection map intact for inspection.
func buildStory(t *testing.T, src string) *World {
	t.Helper()
	doc, err := storytree.Parse([]byte(src))
	require.NoError(t, err)
	root, err := doc.Root("world")
	require.NoError(t, err)

	w := New(nil)
	require.NoError(t, w.loadRooms(root))
	return w
}

func TestLoadRooms_RegistryAndConnectionMap(t *testing.T) {
	w := buildStory(t, twoRoomStory)

	require.Equal(t, 2, w.RoomCount())
	entrance, ok := w.RoomByID(1)
	require.True(t, ok)
	assert.Equal(t, "Entrance", entrance.Name)
	assert.Equal(t, Locked, entrance.Lock)

	vault, ok := w.RoomByID(2)
	require.True(t, ok)
	assert.Equal(t, "Vault", vault.Name)

	// Raw adjacency is recorded per room id, order preserved, before any
	// resolution; no edges exist yet.
	conns := w.ConnectionMap()
	assert.Equal(t, []int{2}, conns[1])
	assert.Empty(t, conns[2])
	assert.Contains(t, conns, 2)
	assert.Empty(t, entrance.Neighbours)
}

func TestLoadRooms_Inventory(t *testing.T) {
	w := buildStory(t, twoRoomStory)

	entrance, ok := w.RoomByID(1)
	require.True(t, ok)
	require.Equal(t, 2, entrance.Inventory.Len())

	items := entrance.Inventory.Items()
	assert.Equal(t, "lantern", items[0].Name)
	assert.False(t, items[0].IsKey())

	assert.Equal(t, "vault key", items[1].Name)
	assert.True(t, items[1].IsKey())
	assert.Equal(t, 2, items[1].UnlocksRoom)
}

func TestLoadRooms_EntityInBothRegistries(t *testing.T) {
	w := buildStory(t, twoRoomStory)

	require.Equal(t, 1, w.PopulationCount())
	entrance, ok := w.RoomByID(1)
	require.True(t, ok)
	require.Len(t, entrance.Population, 1)

	// Same entity, shared by the global registry and the room.
	assert.Same(t, w.Population[0], entrance.Population[0])
	assert.Equal(t, "Warden", entrance.Population[0].Name)
	assert.True(t, entrance.Population[0].Inventory.Contains(12))
	assert.Equal(t, 20, entrance.Population[0].Stats.HP)
	assert.Equal(t, 7, entrance.Population[0].Stats.Strength)
	assert.Equal(t, 0, entrance.Population[0].Stats.Charisma)
}

func TestLoadRooms_EntitiesAttachToOwnRoom(t *testing.T) {
	const src = `
<world>
  <room>
    <name>A</name><description>a</description><id>1</id>
    <entity><name>First</name></entity>
    <entity><name>Second</name></entity>
  </room>
  <room>
    <name>B</name><description>b</description><id>2</id>
    <entity><name>Third</name></entity>
  </room>
</world>
`
	w := buildStory(t, src)

	require.Equal(t, 3, w.PopulationCount())
	a, _ := w.RoomByID(1)
	b, _ := w.RoomByID(2)
	require.Len(t, a.Population, 2)
	require.Len(t, b.Population, 1)
	assert.Equal(t, "First", a.Population[0].Name)
	assert.Equal(t, "Second", a.Population[1].Name)
	assert.Equal(t, "Third", b.Population[0].Name)
}

func TestLoadRooms_MissingFieldIsFatal(t *testing.T) {
	cases := map[string]string{
		"room name": `
<world><room><description>d</description><id>1</id></room></world>`,
		"room description": `
<world><room><name>A</name><id>1</id></room></world>`,
		"room id": `
<world><room><name>A</name><description>d</description></room></world>`,
		"non-integer room id": `
<world><room><name>A</name><description>d</description><id>one</id></room></world>`,
		"object name": `
<world><room><name>A</name><description>d</description><id>1</id>
  <inventory><object><description>d</description><id>2</id></object></inventory>
</room></world>`,
		"entity name": `
<world><room><name>A</name><description>d</description><id>1</id>
  <entity><inventory/></entity>
</room></world>`,
		"non-integer connection id": `
<world><room><name>A</name><description>d</description><id>1</id>
  <connections><id>east</id></connections>
</room></world>`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			doc, err := storytree.Parse([]byte(src))
			require.NoError(t, err)
			root, err := doc.Root("world")
			require.NoError(t, err)

			w := New(nil)
			assert.Error(t, w.loadRooms(root))
		})
	}
}

func TestLoadRooms_AbsentInventoryIsEmpty(t *testing.T) {
	w := buildStory(t, `
<world><room><name>A</name><description>d</description><id>1</id></room></world>`)

	a, ok := w.RoomByID(1)
	require.True(t, ok)
	assert.Equal(t, 0, a.Inventory.Len())
}

func TestCreateRoom_DuplicateIDRejected(t *testing.T) {
	w := New(nil)
	_, err := w.CreateRoom("A", 1, "a")
	require.NoError(t, err)

	_, err = w.CreateRoom("B", 1, "b")
	assert.ErrorIs(t, err, ErrDuplicateRoomID)
	assert.Equal(t, 1, w.RoomCount())
}

func TestLoadRooms_DuplicateIDIsFatal(t *testing.T) {
	doc, err := storytree.Parse([]byte(`
<world>
  <room><name>A</name><description>a</description><id>1</id></room>
  <room><name>B</name><description>b</description><id>1</id></room>
</world>`))
	require.NoError(t, err)
	root, err := doc.Root("world")
	require.NoError(t, err)

	w := New(nil)
	assert.ErrorIs(t, w.loadRooms(root), ErrDuplicateRoomID)
}
