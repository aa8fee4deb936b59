package validation

// Entity kind names accepted by Validate
const (
	KindArtist   = "artist"
	KindAlbum    = "album"
	KindSong     = "song"
	KindPlaylist = "playlist"
)

// ruleSets is the constraint-descriptor table. Each entity kind's field
// contract lives here instead of being re-implemented per route module.
var ruleSets = map[string][]Rule{
	KindArtist: {
		{Field: "name", Required: true, Kind: String, MaxLen: 200},
		{Field: "genre", Required: true, Kind: String, MaxLen: 100},
		{Field: "country", Required: true, Kind: String, MaxLen: 100},
		{Field: "formed_year", Required: true, Kind: Int, Min: 1900, Max: MaxCurrentYear},
		{Field: "members", Required: true, Kind: StringSlice, NonEmpty: true, NoDuplicates: true},
		{Field: "biography", Kind: String, MaxLen: 5000},
		{Field: "website", Kind: String, Check: urlCheck("website")},
		{Field: "social_media", Kind: StringMap},
	},
	KindAlbum: {
		{Field: "title", Required: true, Kind: String, MaxLen: 200},
		{Field: "artist_id", Required: true, Kind: String, Check: objectIDCheck("artist_id")},
		{Field: "release_date", Required: true, Kind: Date, MinDate: "1900-01-01", MaxToday: true},
		{Field: "genre", Required: true, Kind: String, MaxLen: 100},
		{Field: "track_count", Required: true, Kind: Int, Min: 1, Max: 200},
		{Field: "duration", Required: true, Kind: Int, Min: 1, Max: 600},
		{Field: "record_label", Kind: String, MaxLen: 200},
		{Field: "cover_image_url", Kind: String, Check: urlCheck("cover_image_url")},
	},
	KindSong: {
		{Field: "title", Required: true, Kind: String, MaxLen: 200},
		{Field: "album_id", Required: true, Kind: String, Check: objectIDCheck("album_id")},
		{Field: "artist_id", Required: true, Kind: String, Check: objectIDCheck("artist_id")},
		{Field: "duration", Required: true, Kind: Int, Min: 1, Max: 3600},
		{Field: "track_number", Kind: Int, Min: 1, Max: 200},
		{Field: "genre", Required: true, Kind: String, MaxLen: 100},
		{Field: "lyrics", Kind: String},
		{Field: "audio_url", Kind: String, Check: urlCheck("audio_url")},
		{Field: "featured_artists", Kind: StringSlice, NoDuplicates: true},
	},
	KindPlaylist: {
		{Field: "name", Required: true, Kind: String, MaxLen: 200},
		{Field: "creator_name", Required: true, Kind: String, MaxLen: 100},
		{Field: "description", Kind: String, MaxLen: 1000},
		{Field: "songs", Kind: StringSlice, NoDuplicates: true, Check: objectIDSliceCheck("songs")},
		{Field: "tags", Kind: StringSlice, NoDuplicates: true},
		{Field: "is_public", Required: true, Kind: Bool},
		{Field: "cover_image_url", Kind: String, Check: urlCheck("cover_image_url")},
	},
}
