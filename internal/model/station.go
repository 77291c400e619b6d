package model

// Station is a row of the `stations` table.  Stations are immutable once
// created and are listed alphabetically by name.
type Station struct {
    ID   uint64 `json:"id"`   // stations.id
    Name string `json:"name"` // stations.name
    Code string `json:"code"` // stations.code (short code, e.g. SBC)
}

// FallbackStations is served when the stations table is empty so that
// clients never see an empty directory.
var FallbackStations = []Station{
    {ID: 1, Name: "Bengaluru (SBC)", Code: "SBC"},
    {ID: 2, Name: "Mysuru (MYS)", Code: "MYS"},
    {ID: 3, Name: "Mangaluru (MAQ)", Code: "MAQ"},
    {ID: 4, Name: "Hubballi (HUBL)", Code: "HUBL"},
}
